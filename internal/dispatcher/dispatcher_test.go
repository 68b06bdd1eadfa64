package dispatcher

import (
	"testing"

	"github.com/gosed/ed/internal/editor"
	"github.com/gosed/ed/internal/engine/line"
)

// newTestEditor returns an Editor whose buffer already holds texts
// (each without a trailing newline; this helper appends it), with the
// snapshot marked saved so an unrelated Saved() check doesn't trip.
func newTestEditor(t *testing.T, texts ...string) *editor.Editor {
	t.Helper()
	ed := editor.New(256)
	if len(texts) > 0 {
		lines := make([]line.Line, len(texts))
		for i, s := range texts {
			lines[i] = line.MustNew(s + "\n")
		}
		buf := ed.History.CurrentMut("seed")
		if err := buf.Insert(0, lines); err != nil {
			t.Fatal(err)
		}
	}
	ed.History.SetSaved()
	return ed
}

func bufTexts(ed *editor.Editor) []string {
	all := ed.History.Current().All()
	out := make([]string, len(all))
	for i, l := range all {
		out[i] = l.TrimmedText()
	}
	return out
}

