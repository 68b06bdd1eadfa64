package address

import (
	"errors"
	"testing"

	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/engine/line"
)

func mustBuf(t *testing.T, texts ...string) *buffer.Buffer {
	t.Helper()
	lines := make([]line.Line, len(texts))
	for i, s := range texts {
		lines[i] = line.MustNew(s + "\n")
	}
	return buffer.FromLines(lines)
}

func TestParseIndexLiteralAndOffset(t *testing.T) {
	ind, n, err := ParseIndex("12+3", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Kind != KindLiteral || ind.Literal != 12 || ind.Offset != 3 || n != 4 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexBareOffsetIsCurrent(t *testing.T) {
	ind, n, err := ParseIndex("+2", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Kind != KindCurrent || ind.Offset != 2 || n != 2 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexRepeatedBareSign(t *testing.T) {
	ind, n, err := ParseIndex("--", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Offset != -2 || n != 2 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexTag(t *testing.T) {
	ind, n, err := ParseIndex("'a", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Kind != KindTag || ind.Tag != 'a' || n != 2 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexUnfinishedTag(t *testing.T) {
	_, _, err := ParseIndex("'", 0)
	if !errors.Is(err, ErrIndexUnfinished) {
		t.Fatalf("err = %v, want ErrIndexUnfinished", err)
	}
}

func TestParseIndexPattern(t *testing.T) {
	ind, n, err := ParseIndex("/foo/", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Kind != KindPattern || ind.Pattern != "foo" || n != 5 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexPatternUnterminatedRunsToEnd(t *testing.T) {
	ind, n, err := ParseIndex("/foo", 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Pattern != "foo" || n != 4 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexPatternEscapedDelimiter(t *testing.T) {
	ind, n, err := ParseIndex(`/a\/b/`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ind.Pattern != "a/b" || n != 6 {
		t.Fatalf("got %+v n=%d", ind, n)
	}
}

func TestParseIndexIndicesUnrelated(t *testing.T) {
	_, _, err := ParseIndex("$5", 0)
	if !errors.Is(err, ErrIndicesUnrelated) {
		t.Fatalf("err = %v, want ErrIndicesUnrelated", err)
	}
}

func TestParseIndexSpecialAfterStart(t *testing.T) {
	_, _, err := ParseIndex("3+.", 0)
	if !errors.Is(err, ErrIndexSpecialAfterStart) {
		t.Fatalf("err = %v, want ErrIndexSpecialAfterStart", err)
	}
}

func TestParseSelectionEmpty(t *testing.T) {
	sel, n, err := ParseSelection("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Sep != SepNone || sel.HasA || n != 0 {
		t.Fatalf("got %+v n=%d", sel, n)
	}
}

func TestParseSelectionCommaRange(t *testing.T) {
	sel, n, err := ParseSelection("2,5", 0)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Sep != SepComma || !sel.HasA || !sel.HasB || n != 3 {
		t.Fatalf("got %+v n=%d", sel, n)
	}
	if sel.A.Literal != 2 || sel.B.Literal != 5 {
		t.Fatalf("got %+v", sel)
	}
}

func TestParseSelectionCommaDefaultsToWholeBuffer(t *testing.T) {
	sel, _, err := ParseSelection(",", 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := mustBuf(t, "a", "b", "c")
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 2, SelB: 2}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 1, B: 3}) {
		t.Fatalf("got %+v, want (1,3)", got)
	}
}

func TestResolveLoneAddressDefaultsToCurrent(t *testing.T) {
	buf := mustBuf(t, "a", "b", "c")
	sel, _, err := ParseSelection("", 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 2, SelB: 2}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 2, B: 2}) {
		t.Fatalf("got %+v, want (2,2)", got)
	}
}

func TestResolveSemicolonUsesLeftAsCurrentForRight(t *testing.T) {
	buf := mustBuf(t, "a", "b", "c", "d", "e")
	sel, _, err := ParseSelection("2;+2", 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 1, SelB: 1}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 2, B: 4}) {
		t.Fatalf("got %+v, want (2,4)", got)
	}
}

func TestResolveTagLookup(t *testing.T) {
	buf := mustBuf(t, "a", "b", "c")
	l, err := buf.Get(3)
	if err != nil {
		t.Fatal(err)
	}
	l.SetTag('x')
	sel, _, err := ParseSelection("'x", 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 1, SelB: 1}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 3, B: 3}) {
		t.Fatalf("got %+v, want (3,3)", got)
	}
}

func TestResolveTagMissing(t *testing.T) {
	buf := mustBuf(t, "a")
	sel, _, err := ParseSelection("'x", 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Resolve(ResolveCtx{Buf: buf, SelA: 1, SelB: 1}, sel)
	if !errors.Is(err, ErrTagNoMatch) {
		t.Fatalf("err = %v, want ErrTagNoMatch", err)
	}
}

func TestResolvePatternWrapsAround(t *testing.T) {
	buf := mustBuf(t, "x", "needle", "y")
	sel, _, err := ParseSelection("/needle/", 0)
	if err != nil {
		t.Fatal(err)
	}
	// Current on the needle line itself: forward search must skip past
	// it, wrap, and land back on it rather than stopping immediately.
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 2, SelB: 2}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 2, B: 2}) {
		t.Fatalf("got %+v, want (2,2)", got)
	}
}

func TestResolvePatternNoMatch(t *testing.T) {
	buf := mustBuf(t, "a", "b")
	sel, _, err := ParseSelection("/zzz/", 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Resolve(ResolveCtx{Buf: buf, SelA: 1, SelB: 1}, sel)
	if !errors.Is(err, ErrRegexNoMatch) {
		t.Fatalf("err = %v, want ErrRegexNoMatch", err)
	}
}

func TestResolveBufferLenAndDollarOffset(t *testing.T) {
	buf := mustBuf(t, "a", "b", "c")
	sel, _, err := ParseSelection("$-1", 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(ResolveCtx{Buf: buf, SelA: 1, SelB: 1}, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got != (buffer.Selection{A: 2, B: 2}) {
		t.Fatalf("got %+v, want (2,2)", got)
	}
}
