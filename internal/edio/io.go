package edio

import "github.com/gosed/ed/internal/ui"

// WriteMode selects how WriteFile treats an existing file.
type WriteMode int

const (
	// Create fails if the file already exists.
	Create WriteMode = iota
	// Overwrite replaces the file's entire contents.
	Overwrite
	// Append adds to the end of an existing (or absent) file.
	Append
)

// IO is everything the dispatcher needs for file and subprocess
// access. lines passed to the Run*/Write functions are newline
// terminated, ready to be joined and written or piped verbatim.
type IO interface {
	// ReadFile returns a file's contents. If the file does not exist
	// and mustExist is false, it returns "" with no error.
	ReadFile(path string, mustExist bool) (string, error)

	// WriteFile writes lines to path under mode, returning the number
	// of bytes written.
	WriteFile(path string, mode WriteMode, lines []string) (int, error)

	// RunCommand runs cmd with the UI's stdio passed through directly
	// (used for the bare "!cmd" shell-escape form).
	RunCommand(u ui.UI, cmd string) error

	// RunReadCommand runs cmd and captures its stdout.
	RunReadCommand(u ui.UI, cmd string) (string, error)

	// RunWriteCommand runs cmd, feeding lines to its stdin, and returns
	// the number of bytes written to that stdin.
	RunWriteCommand(u ui.UI, cmd string, lines []string) (int, error)

	// RunTransformCommand runs cmd, feeding lines to its stdin and
	// capturing its stdout.
	RunTransformCommand(u ui.UI, cmd string, lines []string) (string, error)
}
