// Package ui declares the interface the command dispatcher uses to
// talk to whatever is driving the editor: a terminal, a test script, or
// a mock. The dispatcher never imports a concrete UI; concrete
// implementations live in subpackages (term, scripted).
package ui
