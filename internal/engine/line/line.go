package line

import "strings"

// NoTag is the tag value meaning "this line carries no tag".
const NoTag = rune(0)

// state is the mutable, shared part of a Line: its tag and its
// per-recursion-depth match stack. Two Line values that came from the
// same constructor call (or the same snapshot-clone) point at the same
// state, so tagging or marking one is visible through every handle.
type state struct {
	tag     rune
	matched []bool
}

// Line is a newline-terminated, immutable run of text plus a tag and a
// match stack shared across every historical copy of that line.
//
// The zero Line is not valid; always construct through New.
type Line struct {
	text string
	st   *state
}

// New validates text and constructs a fresh, untagged, unmarked Line.
// text must contain exactly one newline, as its final byte.
func New(text string) (Line, error) {
	if !strings.HasSuffix(text, "\n") {
		return Line{}, ErrMissingNewline
	}
	if strings.Count(text, "\n") != 1 {
		return Line{}, ErrEmbeddedNewline
	}
	return Line{text: text, st: &state{}}, nil
}

// MustNew is New but panics on invalid input. Intended for constants
// and tests where the text is statically known to be well-formed.
func MustNew(text string) Line {
	l, err := New(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Text returns the line's newline-terminated text.
func (l Line) Text() string { return l.text }

// TrimmedText returns the line's text without its trailing newline.
func (l Line) TrimmedText() string { return strings.TrimSuffix(l.text, "\n") }

// Tag returns the line's tag, or NoTag if untagged.
func (l Line) Tag() rune { return l.st.tag }

// SetTag sets the tag shared by every handle to this line's state.
// An empty rune (NoTag) clears the tag.
func (l Line) SetTag(c rune) { l.st.tag = c }

// Matched reports whether this line is marked at the given recursion
// depth. Depths beyond the current stack are unmarked.
func (l Line) Matched(depth int) bool {
	if depth < 0 || depth >= len(l.st.matched) {
		return false
	}
	return l.st.matched[depth]
}

// TruncateMatched drops any mark data at or beyond depth, erasing
// stale marks from an earlier invocation at the same nesting level.
func (l Line) TruncateMatched(depth int) {
	if depth < len(l.st.matched) {
		l.st.matched = l.st.matched[:depth]
	}
}

// PushMatched truncates to depth then appends v, so that afterward
// Matched(depth) == v and the stack has length depth+1.
func (l Line) PushMatched(depth int, v bool) {
	l.TruncateMatched(depth)
	for len(l.st.matched) < depth {
		l.st.matched = append(l.st.matched, false)
	}
	l.st.matched = append(l.st.matched, v)
}

// MatchDepth returns the current length of the match stack.
func (l Line) MatchDepth() int { return len(l.st.matched) }

// Detach returns a Line with the same text and tag value but a fresh,
// empty match stack that shares identity with nothing else. Used when
// building the Clipboard, so pasted copies can be tagged and marked
// independently of the line they were cut from.
func (l Line) Detach() Line {
	return Line{text: l.text, st: &state{tag: l.st.tag}}
}
