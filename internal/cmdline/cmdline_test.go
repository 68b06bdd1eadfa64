package cmdline

import (
	"errors"
	"testing"
)

func TestParseFlagsOK(t *testing.T) {
	f, err := ParseFlags("pn", "pnl")
	if err != nil {
		t.Fatal(err)
	}
	if !f['p'] || !f['n'] || f['l'] {
		t.Fatalf("got %v", f)
	}
}

func TestParseFlagsDuplicate(t *testing.T) {
	_, err := ParseFlags("pp", "pnl")
	if !errors.Is(err, ErrFlagDuplicate) {
		t.Fatalf("err = %v, want ErrFlagDuplicate", err)
	}
}

func TestParseFlagsUndefined(t *testing.T) {
	_, err := ParseFlags("x", "pnl")
	if !errors.Is(err, ErrFlagUndefined) {
		t.Fatalf("err = %v, want ErrFlagUndefined", err)
	}
}

func TestSplitSepPartsSubstitute(t *testing.T) {
	sep, parts, rest, open, err := SplitSepParts("/foo/bar/gp", 2)
	if err != nil {
		t.Fatal(err)
	}
	if sep != '/' || parts[0] != "foo" || parts[1] != "bar" || rest != "gp" || open {
		t.Fatalf("got sep=%q parts=%v rest=%q open=%v", sep, parts, rest, open)
	}
}

func TestSplitSepPartsEscapedSeparator(t *testing.T) {
	_, parts, _, _, err := SplitSepParts(`/a\/b/c/`, 2)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0] != "a/b" || parts[1] != "c" {
		t.Fatalf("got %v", parts)
	}
}

func TestSplitSepPartsOpenTrailingSeparator(t *testing.T) {
	_, parts, rest, open, err := SplitSepParts("/foo/", 1)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0] != "foo" || rest != "" || !open {
		t.Fatalf("got parts=%v rest=%q open=%v", parts, rest, open)
	}
}

func TestSplitSepPartsUnterminatedRunsToEnd(t *testing.T) {
	_, parts, rest, open, err := SplitSepParts("/foo", 1)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0] != "foo" || rest != "" || open {
		t.Fatalf("got parts=%v rest=%q open=%v (want not-open)", parts, rest, open)
	}
}

func TestSplitSepPartsEscapedEndIsError(t *testing.T) {
	_, _, _, _, err := SplitSepParts(`/foo\/`, 1)
	if !errors.Is(err, ErrArgumentListEscapedEnd) {
		t.Fatalf("err = %v, want ErrArgumentListEscapedEnd", err)
	}
}

func TestParsePathPlain(t *testing.T) {
	isShell, value, err := ParsePath("  file.txt", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if isShell || value != "file.txt" {
		t.Fatalf("got isShell=%v value=%q", isShell, value)
	}
}

func TestParsePathShellEscape(t *testing.T) {
	isShell, value, err := ParsePath("!grep % foo.txt", "default.txt", "")
	if err != nil {
		t.Fatal(err)
	}
	if !isShell || value != "grep default.txt foo.txt" {
		t.Fatalf("got isShell=%v value=%q", isShell, value)
	}
}

func TestParsePathDefaultFileUnset(t *testing.T) {
	_, _, err := ParsePath("%", "", "")
	if !errors.Is(err, ErrDefaultFileUnset) {
		t.Fatalf("err = %v, want ErrDefaultFileUnset", err)
	}
}

func TestParsePathEscapedPercent(t *testing.T) {
	_, value, err := ParsePath(`\%`, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if value != "%" {
		t.Fatalf("got %q", value)
	}
}
