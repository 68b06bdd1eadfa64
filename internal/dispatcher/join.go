package dispatcher

import (
	"strconv"
	"strings"

	"github.com/gosed/ed/internal/engine/buffer"
)

func joinedLine(c *ctx) (string, error) {
	lines, err := c.Ed.History.Current().Range(c.Sel)
	if err != nil {
		return "", wrap(CategoryIndexing, err)
	}
	var b strings.Builder
	for i, l := range lines {
		if i == len(lines)-1 {
			b.WriteString(l.Text())
		} else {
			b.WriteString(l.TrimmedText())
		}
	}
	return b.String(), nil
}

func cmdJ(c *ctx) (bool, error) {
	if err := c.Ed.History.Current().VerifySelection(c.Sel); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	joined, err := joinedLine(c)
	if err != nil {
		return false, err
	}
	newLine, err := toLines([]string{joined})
	if err != nil {
		return false, err
	}
	buf := c.Ed.History.CurrentMut("j")
	removed, err := buf.Replace(c.Sel, newLine)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, len(newLine), buf.Len())
	return false, nil
}

// reflow implements spec.md's J algorithm: concatenate the selection
// (internal newlines become spaces, trailing newline dropped), then
// walk the result tracking the last space seen; whenever the running
// column exceeds width, the last-seen space becomes the break.
func reflow(lines []string, width int) []string {
	var b strings.Builder
	for i, t := range lines {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	full := []byte(b.String())

	lastSpace := -1
	col := 0
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			lastSpace = i
		}
		col++
		if col > width && lastSpace >= 0 {
			full[lastSpace] = '\n'
			col = i - lastSpace
			lastSpace = -1
		}
	}
	return strings.Split(string(full), "\n")
}

func cmdJUpper(c *ctx) (bool, error) {
	if err := c.Ed.History.Current().VerifySelection(c.Sel); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	tail := strings.TrimSpace(c.Tail)
	width := c.Ed.ReflowDefault
	if tail != "" {
		n, err := strconv.Atoi(tail)
		if err != nil {
			return false, wrap(CategoryParsing, ErrReflowNotInt)
		}
		width = n
	}

	cur := c.Ed.History.Current()
	lines, err := cur.Range(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.TrimmedText()
	}

	flowed := reflow(texts, width)
	withNL := make([]string, len(flowed))
	for i, t := range flowed {
		withNL[i] = t + "\n"
	}
	newLines, err := toLines(withNL)
	if err != nil {
		return false, err
	}

	buf := c.Ed.History.CurrentMut("J")
	removed, err := buf.Replace(c.Sel, newLines)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, len(newLines), buf.Len())
	return false, nil
}
