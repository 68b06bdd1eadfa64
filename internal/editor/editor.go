package editor

import (
	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/engine/clipboard"
	"github.com/gosed/ed/internal/engine/history"
	"github.com/gosed/ed/internal/macro"
)

// Substitution is a remembered s/// invocation, reused when a later
// "s" is given with an empty tail.
type Substitution struct {
	Pattern     string
	Replacement string
	Global      bool
}

// Editor is the whole of the editor's mutable state, threaded through
// the dispatcher one command at a time. There is exactly one Editor
// per running instance; it is never accessed from more than one
// goroutine at once (spec's single-threaded cooperative model), so
// unlike the teacher's Engine/Buffer types it carries no mutex.
type Editor struct {
	History   *history.History
	Clipboard clipboard.Clipboard
	Selection buffer.Selection

	File             string
	PrevShellCommand string
	PrevS            *Substitution

	N           bool
	L           bool
	PrintErrors bool

	CmdPrefix rune // 0 means unset

	Macros         *macro.Store
	RecursionLimit int

	// ScrollDefault and ReflowDefault are the z/Z and J command's
	// default line/width counts when no explicit N is given. Set by
	// cmd/ed at startup from internal/config's settings.
	ScrollDefault int
	ReflowDefault int

	LastErr error

	// Classic disables the modern extensions (A, I, C, G, V, macros)
	// at dispatch time, mirroring the original project's separate
	// classic-ed binary without shipping two binaries.
	Classic bool
}

// New returns a freshly initialized Editor: empty history, empty
// clipboard, the empty-buffer selection sentinel, an empty macro
// store, and the given recursion limit.
func New(recursionLimit int) *Editor {
	return &Editor{
		History:        history.New(),
		Selection:      buffer.EmptySelection,
		Macros:         macro.NewStore(),
		RecursionLimit: recursionLimit,
		ScrollDefault:  24,
		ReflowDefault:  80,
	}
}

// Current returns the current line, i.e. Selection.A, or 0 if the
// buffer is empty.
func (e *Editor) Current() int {
	if e.Selection.IsEmpty() {
		return 0
	}
	return e.Selection.A
}
