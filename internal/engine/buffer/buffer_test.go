package buffer

import (
	"testing"

	"github.com/gosed/ed/internal/engine/line"
)

func mustLines(ss ...string) []line.Line {
	out := make([]line.Line, len(ss))
	for i, s := range ss {
		out[i] = line.MustNew(s + "\n")
	}
	return out
}

func TestInsertAndDelete(t *testing.T) {
	b := FromLines(mustLines("a", "b", "c"))
	removed, err := b.Delete(Selection{A: 2, B: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 1 || removed[0].TrimmedText() != "b" {
		t.Fatalf("removed = %v, want [b]", removed)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	got, _ := b.Get(1)
	if got.TrimmedText() != "a" {
		t.Fatalf("line 1 = %q, want a", got.TrimmedText())
	}
	got, _ = b.Get(2)
	if got.TrimmedText() != "c" {
		t.Fatalf("line 2 = %q, want c", got.TrimmedText())
	}
}

func TestVerifySelectionEmptyBuffer(t *testing.T) {
	b := New()
	if err := b.VerifyLine(1); err == nil {
		t.Fatal("VerifyLine(1) on empty buffer should error")
	}
	if err := b.VerifyIndex(0); err != nil {
		t.Fatalf("VerifyIndex(0) on empty buffer: %v", err)
	}
}

func TestCloneSharesLineIdentityNotOrdering(t *testing.T) {
	b := FromLines(mustLines("a", "b"))
	clone := b.Clone()

	l, _ := b.Get(1)
	l.SetTag('x')

	cl, _ := clone.Get(1)
	if cl.Tag() != 'x' {
		t.Fatal("clone should observe tag set through shared line identity")
	}

	if err := clone.Insert(2, mustLines("c")); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Fatalf("original buffer mutated by clone insert, Len() = %d", b.Len())
	}
}

func TestPostDeletionSelection(t *testing.T) {
	cases := []struct {
		sel       Selection
		insertLen int
		lenAfter  int
		want      Selection
	}{
		{Selection{2, 2}, 0, 2, Selection{2, 2}},
		{Selection{1, 1}, 0, 0, Selection{1, 0}},
		{Selection{3, 4}, 0, 2, Selection{2, 2}},
	}
	for _, c := range cases {
		got := PostDeletionSelection(c.sel, c.insertLen, c.lenAfter)
		if got != c.want {
			t.Errorf("PostDeletionSelection(%v, %d, %d) = %v, want %v", c.sel, c.insertLen, c.lenAfter, got, c.want)
		}
	}
}
