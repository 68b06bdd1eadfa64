package ui

// Line is one resolved, numbered line of editor text handed to
// PrintSelection: a 1-indexed position, its tag, and its text.
type Line struct {
	Index int
	Tag   rune
	Text  string
}

// UI is everything the dispatcher needs from whatever is driving the
// editor. Every operation is fallible: a UI backed by a terminal can
// fail on read error or EOF; a scripted UI instead answers "Q" once
// its script runs out.
type UI interface {
	// GetCommand returns one user-entered command line, without its
	// trailing newline. prefix, if non-empty, is shown to the user as
	// part of the prompt (spec.md's cmd_prefix).
	GetCommand(prefix string) (string, error)

	// GetInput reads lines until one equal to terminator is seen; that
	// terminator line is consumed but not included in the result. Each
	// returned line is newline-terminated, ready for line.New.
	GetInput(terminator string) ([]string, error)

	// SeedInput pre-populates the next GetInput call's editing buffer
	// with the given lines (used by "C", which seeds input with the
	// current selection's text). A UI with no interactive editing
	// surface (a script, a mock) may ignore this.
	SeedInput(lines []string) error

	// PrintMessage writes an informational string. The UI owns whether
	// and how to terminate it with a newline.
	PrintMessage(msg string) error

	// PrintSelection renders the given lines, honoring numbered/literal
	// display flags.
	PrintSelection(lines []Line, numbered, literal bool) error

	// LockUI/UnlockUI bracket handing stdio to a subprocess (running a
	// shell command via !, or a write/read/transform command).
	LockUI() error
	UnlockUI() error
}
