package dispatcher

import (
	"reflect"
	"testing"

	"github.com/gosed/ed/internal/edio/fakeio"
	"github.com/gosed/ed/internal/ui/scripted"
)

func TestJoinConcatenatesSelectedLines(t *testing.T) {
	ed := newTestEditor(t, "one", "two", "three")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "1,2j"); err != nil {
		t.Fatal(err)
	}
	want := []string{"onetwo", "three"}
	if got := bufTexts(ed); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestJoinSetsClipboardToJoinedLines(t *testing.T) {
	ed := newTestEditor(t, "1", "2", "3", "4", "5", "6")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "2,4j"); err != nil {
		t.Fatal(err)
	}
	want := []string{"2", "3", "4"}
	got := make([]string, len(ed.Clipboard.Lines()))
	for i, l := range ed.Clipboard.Lines() {
		got[i] = l.TrimmedText()
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("clipboard = %v, want %v", got, want)
	}
}

func TestReflowWrapsAtWidth(t *testing.T) {
	ed := newTestEditor(t, "aaaa", "bbbb", "cccc")
	u := scripted.New(nil)
	io := fakeio.New()

	if _, err := Run(ed, u, io, "1,3J9"); err != nil {
		t.Fatal(err)
	}
	want := []string{"aaaa bbbb", "cccc"}
	if got := bufTexts(ed); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
