package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/address"
	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/editor"
	"github.com/gosed/ed/internal/ui"
)

// specialWords are command spellings longer than one byte, checked
// before falling back to a single command character.
var specialWords = []string{"Help", "help", "wq"}

// modernOnly commands are disabled when editor.Editor.Classic is set.
var modernOnly = map[string]bool{
	"A": true, "I": true, "C": true, "G": true, "V": true, ":": true,
}

// Run parses and executes one top-level command line.
func Run(ed *editor.Editor, u ui.UI, io edio.IO, lineText string) (quit bool, err error) {
	quit, err = runAtDepth(ed, u, io, lineText, 0)
	if err != nil {
		ed.LastErr = err
	}
	return quit, err
}

func runAtDepth(ed *editor.Editor, u ui.UI, io edio.IO, lineText string, depth int) (bool, error) {
	sel, pos, err := address.ParseSelection(lineText, 0)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	rest := lineText[pos:]
	cmdWord, tail := splitCommand(rest)

	if ed.Classic && modernOnly[cmdWord] {
		return false, wrap(CategoryParsing, ErrCommandUndefined)
	}

	h, ok := registry[cmdWord]
	if !ok {
		return false, wrap(CategoryParsing, ErrCommandUndefined)
	}

	var resolved = ed.Selection
	if sel.Explicit() {
		resolved, err = address.Resolve(address.ResolveCtx{
			Buf:  ed.History.Current(),
			SelA: ed.Selection.A,
			SelB: ed.Selection.B,
		}, sel)
		if err != nil {
			return false, wrap(CategoryIndexing, err)
		}
	}

	// Resolving the address region always updates the current
	// selection, even for commands (like "#") that otherwise do
	// nothing; handlers that need a different final selection (a
	// delete's post-selection rule, a scroll window) set
	// ed.Selection again themselves after this.
	ed.Selection = resolved

	c := &ctx{
		Ed:     ed,
		UI:     u,
		IO:     io,
		Sel:    resolved,
		SelAST: sel,
		Cmd:    cmdWord,
		Tail:   tail,
		Depth:  depth,
	}
	quit, err := h(c)
	if err != nil {
		return quit, categorize(err)
	}
	return quit, nil
}

// splitCommand separates the command word from its tail. Multi-byte
// spellings (Help/help/wq) are tried first; otherwise the command is a
// single byte, or the empty string if rest is empty.
func splitCommand(rest string) (cmd, tail string) {
	for _, w := range specialWords {
		if strings.HasPrefix(rest, w) {
			return w, rest[len(w):]
		}
	}
	if rest == "" {
		return "", ""
	}
	return rest[0:1], rest[1:]
}

// forbidSelection returns ErrSelectionForbidden if the user wrote an
// explicit address for a command that takes none.
func forbidSelection(c *ctx) error {
	if c.SelAST.Explicit() {
		return wrap(CategoryIndexing, ErrSelectionForbidden)
	}
	return nil
}

// categorize wraps an error in EdError if it isn't already one,
// guessing State as the category for anything uncategorized raised
// directly by a handler.
func categorize(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*EdError); ok {
		return err
	}
	return wrap(CategoryState, err)
}
