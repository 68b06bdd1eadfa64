package dispatcher

import (
	"reflect"
	"testing"

	"github.com/gosed/ed/internal/edio/fakeio"
	"github.com/gosed/ed/internal/ui/scripted"
)

func TestWriteWholeBufferToFile(t *testing.T) {
	ed := newTestEditor(t, "one", "two")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "w out.txt"); err != nil {
		t.Fatal(err)
	}
	if got, want := io.Files["out.txt"], "one\ntwo\n"; got != want {
		t.Fatalf("Files[out.txt] = %q, want %q", got, want)
	}
	if ed.File != "out.txt" {
		t.Fatalf("ed.File = %q, want out.txt", ed.File)
	}
	if !ed.History.Saved() {
		t.Fatal("expected History.Saved() after w")
	}
}

func TestReadInsertsFileContentAfterSelection(t *testing.T) {
	ed := newTestEditor(t, "one", "two")
	ed.Selection.A, ed.Selection.B = 1, 1
	io := fakeio.New()
	io.Files["extra.txt"] = "extra\n"
	u := scripted.New(nil)

	if _, err := Run(ed, u, io, "1r extra.txt"); err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "extra", "two"}
	if got := bufTexts(ed); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEditUpperReplacesBufferWithoutSavedCheck(t *testing.T) {
	ed := newTestEditor(t, "stale")
	io := fakeio.New()
	io.Files["fresh.txt"] = "fresh one\nfresh two\n"
	u := scripted.New(nil)

	if _, err := Run(ed, u, io, "1d"); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(ed, u, io, "E fresh.txt"); err != nil {
		t.Fatal(err)
	}
	want := []string{"fresh one", "fresh two"}
	if got := bufTexts(ed); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEditRefusesUnsavedChanges(t *testing.T) {
	ed := newTestEditor(t, "one", "two")
	u := scripted.New(nil)
	io := fakeio.New()
	io.Files["fresh.txt"] = "fresh\n"

	if _, err := Run(ed, u, io, "1d"); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(ed, u, io, "e fresh.txt"); err == nil {
		t.Fatal("expected ErrUnsavedChanges")
	}
}

func TestWQRequiresWholeBufferSelection(t *testing.T) {
	ed := newTestEditor(t, "one", "two", "three")
	ed.File = "out.txt"
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "1,2wq"); err == nil {
		t.Fatal("expected ErrSelectionForbidden for a partial-selection wq")
	}
}

func TestWQWritesAndQuits(t *testing.T) {
	ed := newTestEditor(t, "one", "two")
	ed.File = "out.txt"
	u := scripted.New(nil)
	io := fakeio.New()

	quit, err := Run(ed, u, io, "wq")
	if err != nil {
		t.Fatal(err)
	}
	if !quit {
		t.Fatal("expected wq to quit")
	}
	if got, want := io.Files["out.txt"], "one\ntwo\n"; got != want {
		t.Fatalf("Files[out.txt] = %q, want %q", got, want)
	}
}

func TestBangRunsShellCommand(t *testing.T) {
	ed := newTestEditor(t)
	u := scripted.New(nil)
	io := fakeio.New()
	io.StubCommand("echo hi", "", "")

	if _, err := Run(ed, u, io, "!echo hi"); err != nil {
		t.Fatal(err)
	}
	if ed.PrevShellCommand != "echo hi" {
		t.Fatalf("PrevShellCommand = %q, want %q", ed.PrevShellCommand, "echo hi")
	}
}

func TestPipeTransformsSelection(t *testing.T) {
	ed := newTestEditor(t, "one", "two")
	u := scripted.New(nil)
	io := fakeio.New()
	io.StubCommand("tr a-z A-Z", "one\ntwo\n", "ONE\nTWO\n")

	if _, err := Run(ed, u, io, "1,2|tr a-z A-Z"); err != nil {
		t.Fatal(err)
	}
	want := []string{"ONE", "TWO"}
	if got := bufTexts(ed); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
