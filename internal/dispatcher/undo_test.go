package dispatcher

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gosed/ed/internal/edio/fakeio"
	"github.com/gosed/ed/internal/ui/scripted"
)

func TestUndoThenRedo(t *testing.T) {
	ed := newTestEditor(t, "one")
	u := scripted.New([]string{"two", "."})
	io := fakeio.New()

	if _, err := Run(ed, u, io, "1a"); err != nil {
		t.Fatal(err)
	}
	if got, want := bufTexts(ed), []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := Run(ed, u, io, "u"); err != nil {
		t.Fatal(err)
	}
	if got, want := bufTexts(ed), []string{"one"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after undo: got %v, want %v", got, want)
	}

	if _, err := Run(ed, u, io, "u-1"); err != nil {
		t.Fatal(err)
	}
	if got, want := bufTexts(ed), []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after redo: got %v, want %v", got, want)
	}
}

func TestUndoZeroStepsIsNoOp(t *testing.T) {
	ed := newTestEditor(t, "one")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "u0"); err == nil {
		t.Fatal("expected ErrNoOp for u0")
	}
}

func TestUndoQuestionPrintsHistory(t *testing.T) {
	ed := newTestEditor(t, "one")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "u?"); err != nil {
		t.Fatal(err)
	}
	if len(u.PrintsHistory) != 1 {
		t.Fatalf("PrintsHistory len = %d, want 1", len(u.PrintsHistory))
	}
	if !strings.Contains(u.PrintsHistory[0].Text[0], "seed") {
		t.Fatalf("history window doesn't mention the seed snapshot: %q", u.PrintsHistory[0].Text[0])
	}
}
