// Package edio declares the interface the command dispatcher uses for
// file and subprocess access. Concrete implementations live in
// subpackages: localio (the real filesystem and os/exec) and fakeio
// (an in-memory stand-in for tests).
package edio
