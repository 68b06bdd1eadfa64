package dispatcher

import (
	"strconv"
	"strings"

	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/ui"
)

func scrollCount(c *ctx) (int, error) {
	tail := strings.TrimSpace(c.Tail)
	if tail == "" {
		return c.Ed.ScrollDefault, nil
	}
	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0, wrap(CategoryParsing, ErrScrollNotInt)
	}
	return n, nil
}

func printWindow(c *ctx, sel buffer.Selection) error {
	lines, err := c.Ed.History.Current().Range(sel)
	if err != nil {
		return wrap(CategoryIndexing, err)
	}
	out := make([]ui.Line, len(lines))
	for i, l := range lines {
		out[i] = ui.Line{Index: sel.A + i, Tag: l.Tag(), Text: l.TrimmedText()}
	}
	return c.UI.PrintSelection(out, c.Ed.N, c.Ed.L)
}

func cmdZ(c *ctx) (bool, error) {
	n, err := scrollCount(c)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, wrap(CategoryState, ErrNoOp)
	}
	buf := c.Ed.History.Current()
	start := c.Sel.B + 1
	end := start + n - 1
	win, werr := clampWindow(buf, start, end)
	if werr != nil {
		return false, werr
	}
	c.Ed.Selection = win
	return false, printWindow(c, win)
}

func cmdZUpper(c *ctx) (bool, error) {
	n, err := scrollCount(c)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, wrap(CategoryState, ErrNoOp)
	}
	buf := c.Ed.History.Current()
	end := c.Sel.A - 1
	start := end - n + 1
	win, werr := clampWindow(buf, start, end)
	if werr != nil {
		return false, werr
	}
	c.Ed.Selection = win
	return false, printWindow(c, win)
}

func clampWindow(buf *buffer.Buffer, start, end int) (buffer.Selection, error) {
	if start < 1 {
		start = 1
	}
	if end > buf.Len() {
		end = buf.Len()
	}
	win := buffer.Selection{A: start, B: end}
	if win.IsEmpty() {
		return buffer.Selection{}, wrap(CategoryIndexing, buffer.ErrSelectionEmpty)
	}
	return win, nil
}
