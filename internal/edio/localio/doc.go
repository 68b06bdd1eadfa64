// Package localio is the production edio.IO: real files via os, real
// subprocesses via os/exec, with the UI's stdio handed through for the
// bare shell-escape and transparent-passthrough forms.
package localio
