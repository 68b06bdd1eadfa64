package history

import (
	"testing"

	"github.com/gosed/ed/internal/engine/line"
)

func appendLine(t *testing.T, h *History, text string) {
	t.Helper()
	buf := h.CurrentMut("append " + text)
	if err := buf.Insert(buf.Len(), []line.Line{line.MustNew(text + "\n")}); err != nil {
		t.Fatal(err)
	}
}

func TestUndoRedoRestoresBaseline(t *testing.T) {
	h := New()
	for _, s := range []string{"a", "b", "c", "d"} {
		appendLine(t, h, s)
	}
	if h.Current().Len() != 4 {
		t.Fatalf("Len() = %d, want 4", h.Current().Len())
	}
	if err := h.Undo(4); err != nil {
		t.Fatal(err)
	}
	if h.Current().Len() != 0 {
		t.Fatalf("after undo 4, Len() = %d, want 0", h.Current().Len())
	}
	if err := h.Redo(4); err != nil {
		t.Fatal(err)
	}
	if h.Current().Len() != 4 {
		t.Fatalf("after redo 4, Len() = %d, want 4", h.Current().Len())
	}
}

func TestEditAfterUndoAppendsRevert(t *testing.T) {
	h := New()
	appendLine(t, h, "a")
	appendLine(t, h, "b")
	if err := h.Undo(1); err != nil {
		t.Fatal(err)
	}
	before := h.Len()
	appendLine(t, h, "c")
	if h.Len() != before+2 { // revert snapshot + new edit snapshot
		t.Fatalf("Len() = %d, want %d", h.Len(), before+2)
	}
	if h.Current().Len() != 2 {
		t.Fatalf("Len() of current buffer = %d, want 2 ([a,c])", h.Current().Len())
	}
}

func TestSavedTracking(t *testing.T) {
	h := New()
	appendLine(t, h, "a")
	h.SetSaved()
	if !h.Saved() {
		t.Fatal("expected Saved() true right after SetSaved")
	}
	appendLine(t, h, "b")
	if h.Saved() {
		t.Fatal("expected Saved() false after further edit")
	}
}

func TestDedupPresentPopsNoOpSnapshot(t *testing.T) {
	h := New()
	appendLine(t, h, "a")
	before := h.Len()
	// Simulate a macro step that cloned but changed nothing.
	h.push("no-op macro step", h.Current().Clone())
	h.DedupPresent()
	if h.Len() != before {
		t.Fatalf("Len() = %d, want %d (dedup should pop the no-op snapshot)", h.Len(), before)
	}
}

func TestCurrentMutDoesNotSnapshotDuringMacro(t *testing.T) {
	h := New()
	h.DontSnapshot = true
	base := h.Len()
	buf := h.CurrentMut("macro step 1")
	_ = buf.Insert(0, []line.Line{line.MustNew("x\n")})
	buf2 := h.CurrentMut("macro step 2")
	_ = buf2.Insert(buf2.Len(), []line.Line{line.MustNew("y\n")})
	if h.Len() != base {
		t.Fatalf("Len() = %d, want unchanged %d while DontSnapshot is set", h.Len(), base)
	}
	if h.Current().Len() != 2 {
		t.Fatalf("Current().Len() = %d, want 2", h.Current().Len())
	}
}

func TestListWindow(t *testing.T) {
	h := New()
	for _, s := range []string{"a", "b", "c"} {
		appendLine(t, h, s)
	}
	entries := h.ListWindow(1, 1)
	// viewedI is 3 (0=initial, 1=a, 2=b, 3=c); lo=2, hi clamps to 3.
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if !entries[len(entries)-1].Current {
		t.Fatal("last entry should be marked current")
	}
}
