package buffer

import "github.com/gosed/ed/internal/engine/line"

// Buffer is an ordered, 1-indexed sequence of lines.
type Buffer struct {
	lines []line.Line
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromLines returns a Buffer containing exactly the given lines, in order.
func FromLines(lines []line.Line) *Buffer {
	b := &Buffer{lines: make([]line.Line, len(lines))}
	copy(b.lines, lines)
	return b
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int { return len(b.lines) }

// VerifyIndex checks that i is a legal append position: 0 <= i <= len.
func (b *Buffer) VerifyIndex(i int) error {
	if i < 0 || i > b.Len() {
		return ErrIndexTooBig
	}
	return nil
}

// VerifyLine checks that i addresses a real line: 1 <= i <= len.
func (b *Buffer) VerifyLine(i int) error {
	if i == 0 {
		return ErrLine0Invalid
	}
	if i < 1 || i > b.Len() {
		return ErrIndexTooBig
	}
	return nil
}

// VerifySelection checks that both ends of sel are real lines and
// sel.A <= sel.B.
func (b *Buffer) VerifySelection(sel Selection) error {
	if sel.A > sel.B {
		return ErrSelectionInverted
	}
	if err := b.VerifyLine(sel.A); err != nil {
		return err
	}
	return b.VerifyLine(sel.B)
}

// Get returns the line at 1-indexed position i.
func (b *Buffer) Get(i int) (line.Line, error) {
	if err := b.VerifyLine(i); err != nil {
		return line.Line{}, err
	}
	return b.lines[i-1], nil
}

// Range returns the lines in the inclusive selection sel. The returned
// slice shares Line identity with the buffer but is an independent copy
// of the slice header, so callers may freely reorder or store it.
func (b *Buffer) Range(sel Selection) ([]line.Line, error) {
	if sel.IsEmpty() {
		return nil, nil
	}
	if err := b.VerifySelection(sel); err != nil {
		return nil, err
	}
	out := make([]line.Line, sel.Len())
	copy(out, b.lines[sel.A-1:sel.B])
	return out, nil
}

// All returns every line in the buffer.
func (b *Buffer) All() []line.Line {
	out := make([]line.Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Insert splices newLines into the buffer so that they begin at append
// position at (0 <= at <= len): newLines[0] becomes line at+1.
func (b *Buffer) Insert(at int, newLines []line.Line) error {
	if err := b.VerifyIndex(at); err != nil {
		return err
	}
	if len(newLines) == 0 {
		return nil
	}
	grown := make([]line.Line, 0, len(b.lines)+len(newLines))
	grown = append(grown, b.lines[:at]...)
	grown = append(grown, newLines...)
	grown = append(grown, b.lines[at:]...)
	b.lines = grown
	return nil
}

// Delete removes the inclusive selection sel and returns the removed
// lines (still sharing identity with whatever snapshot held them).
func (b *Buffer) Delete(sel Selection) ([]line.Line, error) {
	if sel.IsEmpty() {
		return nil, nil
	}
	if err := b.VerifySelection(sel); err != nil {
		return nil, err
	}
	removed := make([]line.Line, sel.Len())
	copy(removed, b.lines[sel.A-1:sel.B])
	b.lines = append(b.lines[:sel.A-1:sel.A-1], b.lines[sel.B:]...)
	return removed, nil
}

// Replace deletes sel and inserts newLines in its place, returning the
// removed lines. An empty sel is a pure insert at sel.A-1 (append
// position); this matches spec.md's append/insert contracts, which
// pass Selection{A: pos, B: pos-1} to mean "insert before pos".
func (b *Buffer) Replace(sel Selection, newLines []line.Line) ([]line.Line, error) {
	var removed []line.Line
	var err error
	at := sel.A - 1
	if !sel.IsEmpty() {
		removed, err = b.Delete(sel)
		if err != nil {
			return nil, err
		}
	} else if err := b.VerifyIndex(at); err != nil {
		return nil, err
	}
	if err := b.Insert(at, newLines); err != nil {
		return nil, err
	}
	return removed, nil
}

// Clone returns a Buffer whose lines are the same handles as b's (so
// tag/match mutations remain visible through both), but whose ordering
// is independent: appending to the clone never affects b.
func (b *Buffer) Clone() *Buffer {
	cp := make([]line.Line, len(b.lines))
	copy(cp, b.lines)
	return &Buffer{lines: cp}
}

// PostDeletionSelection computes the standard post-selection after a
// command that removed lines and inserted insertLen replacement lines
// starting at the original selection's start (spec.md section 4.3,
// "Post-selection rule for deletion-like commands"). insertLen is the
// number of lines actually written back (0 for a pure cut); when a
// pure cut leaves the buffer non-empty the selection still collapses
// onto a single line, so a cut's insertLen of 0 is treated as 1 for
// this computation as long as the buffer isn't now empty.
func PostDeletionSelection(sel Selection, insertLen, lenAfter int) Selection {
	if insertLen == 0 && lenAfter > 0 {
		insertLen = 1
	}
	start := sel.A
	if start > lenAfter {
		start = lenAfter
	}
	if start < 1 {
		start = 1
	}
	end := sel.A + insertLen - 1
	if end > lenAfter {
		end = lenAfter
	}
	return Selection{A: start, B: end}
}
