package dispatcher

import (
	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/engine/line"
)

func toLines(texts []string) ([]line.Line, error) {
	out := make([]line.Line, len(texts))
	for i, t := range texts {
		l, err := line.New(t)
		if err != nil {
			return nil, wrap(CategoryInternal, err)
		}
		out[i] = l
	}
	return out, nil
}

func cmdA(c *ctx) (bool, error) {
	input, err := c.UI.GetInput(".")
	if err != nil {
		return false, wrap(CategoryUI, err)
	}
	newLines, err := toLines(input)
	if err != nil {
		return false, err
	}
	if len(newLines) == 0 {
		return false, nil
	}
	at := c.Sel.B
	buf := c.Ed.History.CurrentMut("a")
	if err := buf.Insert(at, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(newLines)}
	return false, nil
}

func cmdI(c *ctx) (bool, error) {
	input, err := c.UI.GetInput(".")
	if err != nil {
		return false, wrap(CategoryUI, err)
	}
	newLines, err := toLines(input)
	if err != nil {
		return false, err
	}
	if len(newLines) == 0 {
		return false, nil
	}
	at := c.Sel.A - 1
	buf := c.Ed.History.CurrentMut("i")
	if err := buf.Insert(at, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(newLines)}
	return false, nil
}

// inlineJoin builds the replacement line run for A/I: one boundary
// line whose text is the concatenation of old's text and the adjoining
// input line, plus the remaining input lines as separate lines.
func inlineJoin(old line.Line, input []string, appendMode bool) ([]line.Line, error) {
	if len(input) == 0 {
		return nil, nil
	}
	if appendMode {
		combined, err := line.New(old.TrimmedText() + input[0])
		if err != nil {
			return nil, wrap(CategoryInternal, err)
		}
		rest, err := toLines(input[1:])
		if err != nil {
			return nil, err
		}
		return append([]line.Line{combined}, rest...), nil
	}
	last := input[len(input)-1]
	lastTrimmed := last
	if len(last) > 0 && last[len(last)-1] == '\n' {
		lastTrimmed = last[:len(last)-1]
	}
	combined, err := line.New(lastTrimmed + old.Text())
	if err != nil {
		return nil, wrap(CategoryInternal, err)
	}
	head, err := toLines(input[:len(input)-1])
	if err != nil {
		return nil, err
	}
	return append(head, combined), nil
}

func cmdAUpper(c *ctx) (bool, error) {
	cur := c.Ed.History.Current()
	if err := cur.VerifyLine(c.Sel.B); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	old, _ := cur.Get(c.Sel.B)
	input, err := c.UI.GetInput(".")
	if err != nil {
		return false, wrap(CategoryUI, err)
	}
	newLines, err := inlineJoin(old, input, true)
	if err != nil {
		return false, err
	}
	c.Ed.Clipboard.Set([]line.Line{old})
	if len(newLines) == 0 {
		return false, nil
	}
	buf := c.Ed.History.CurrentMut("A")
	if _, err := buf.Replace(buffer.Selection{A: c.Sel.B, B: c.Sel.B}, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.PostDeletionSelection(buffer.Selection{A: c.Sel.B, B: c.Sel.B}, len(newLines), buf.Len())
	return false, nil
}

func cmdIUpper(c *ctx) (bool, error) {
	cur := c.Ed.History.Current()
	if err := cur.VerifyLine(c.Sel.A); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	old, _ := cur.Get(c.Sel.A)
	input, err := c.UI.GetInput(".")
	if err != nil {
		return false, wrap(CategoryUI, err)
	}
	newLines, err := inlineJoin(old, input, false)
	if err != nil {
		return false, err
	}
	c.Ed.Clipboard.Set([]line.Line{old})
	if len(newLines) == 0 {
		return false, nil
	}
	buf := c.Ed.History.CurrentMut("I")
	if _, err := buf.Replace(buffer.Selection{A: c.Sel.A, B: c.Sel.A}, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.PostDeletionSelection(buffer.Selection{A: c.Sel.A, B: c.Sel.A}, len(newLines), buf.Len())
	return false, nil
}

func replaceWithInput(c *ctx, label string, seed bool) (bool, error) {
	if seed {
		cur := c.Ed.History.Current()
		lines, err := cur.Range(c.Sel)
		if err != nil {
			return false, wrap(CategoryIndexing, err)
		}
		texts := make([]string, len(lines))
		for i, l := range lines {
			texts[i] = l.Text()
		}
		if err := c.UI.SeedInput(texts); err != nil {
			return false, wrap(CategoryUI, err)
		}
	}
	input, err := c.UI.GetInput(".")
	if err != nil {
		return false, wrap(CategoryUI, err)
	}
	newLines, err := toLines(input)
	if err != nil {
		return false, err
	}
	lenAfter := c.Ed.History.Current().Len() - c.Sel.Len() + len(newLines)
	if lenAfter == 0 && (c.Ed.N || c.Ed.L) {
		return false, wrap(CategoryState, ErrPrintAfterWipe)
	}
	buf := c.Ed.History.CurrentMut(label)
	removed, err := buf.Replace(c.Sel, newLines)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, len(newLines), buf.Len())
	return false, nil
}

func cmdC(c *ctx) (bool, error)  { return replaceWithInput(c, "c", false) }
func cmdCUpper(c *ctx) (bool, error) { return replaceWithInput(c, "C", true) }

func cmdD(c *ctx) (bool, error) {
	lenAfter := c.Ed.History.Current().Len() - c.Sel.Len()
	if lenAfter == 0 && (c.Ed.N || c.Ed.L) {
		return false, wrap(CategoryState, ErrPrintAfterWipe)
	}
	buf := c.Ed.History.CurrentMut("d")
	removed, err := buf.Delete(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, 0, buf.Len())
	return false, nil
}

func cmdY(c *ctx) (bool, error) {
	lines, err := c.Ed.History.Current().Range(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(lines)
	return false, nil
}

func cmdX(c *ctx) (bool, error) {
	pasted := c.Ed.Clipboard.Lines()
	if len(pasted) == 0 {
		return false, nil
	}
	at := c.Sel.B
	buf := c.Ed.History.CurrentMut("x")
	if err := buf.Insert(at, pasted); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(pasted)}
	return false, nil
}

func cmdXUpper(c *ctx) (bool, error) {
	pasted := c.Ed.Clipboard.Lines()
	if len(pasted) == 0 {
		return false, nil
	}
	at := c.Sel.A - 1
	buf := c.Ed.History.CurrentMut("X")
	if err := buf.Insert(at, pasted); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(pasted)}
	return false, nil
}

func tagCmd(c *ctx, end bool) (bool, error) {
	if len(c.Tail) > 1 {
		return false, wrap(CategoryState, ErrTagInvalid)
	}
	var tag rune
	if len(c.Tail) == 1 {
		tag = rune(c.Tail[0])
	}
	idx := c.Sel.A
	if end {
		idx = c.Sel.B
	}
	cur := c.Ed.History.Current()
	l, err := cur.Get(idx)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	l.SetTag(tag)
	return false, nil
}

func cmdK(c *ctx) (bool, error)      { return tagCmd(c, false) }
func cmdKUpper(c *ctx) (bool, error) { return tagCmd(c, true) }
