// Package clipboard holds the detached run of lines produced by the
// editor's cut/copy/yank commands.
//
// Clipboard lines are always detached (line.Line.Detach): they carry
// their source tag by value but share no tag or match-stack identity
// with any buffer line, so pasting them back in cannot reconnect
// shared state with the line they came from.
package clipboard

import "github.com/gosed/ed/internal/engine/line"

// Clipboard is a plain, ordered run of detached lines.
type Clipboard struct {
	lines []line.Line
}

// Set replaces the clipboard contents with detached copies of src.
func (c *Clipboard) Set(src []line.Line) {
	c.lines = make([]line.Line, len(src))
	for i, l := range src {
		c.lines[i] = l.Detach()
	}
}

// Lines returns a fresh detached copy of the clipboard's contents.
// Each call returns independent line identity, so pasting the same
// clipboard twice produces two runs of lines that can be tagged or
// marked without affecting each other.
func (c *Clipboard) Lines() []line.Line {
	out := make([]line.Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.Detach()
	}
	return out
}

// Len returns the number of lines currently held.
func (c *Clipboard) Len() int { return len(c.lines) }

// DetachAll returns a detached copy of each line in src. Used by the
// copy-variant commands (t/T) to build an independently taggable run
// of lines before inserting it, without going through the clipboard.
func DetachAll(src []line.Line) []line.Line {
	out := make([]line.Line, len(src))
	for i, l := range src {
		out[i] = l.Detach()
	}
	return out
}
