package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/address"
	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/engine/clipboard"
)

// destAt resolves the command's trailing address to an append position
// (the "at" argument to Buffer.Insert). after selects m/t's "insert
// right after the address" semantics; !after selects M/T's "insert
// right before the address" semantics. An empty tail defaults to $ for
// after and 1 for before, per spec.md's "Default address for m/t is
// $; for M/T is 1".
func destAt(c *ctx, buf *buffer.Buffer, after bool) (int, error) {
	tail := strings.TrimSpace(c.Tail)
	var d int
	if tail == "" {
		if after {
			d = buf.Len()
		} else {
			d = 1
		}
	} else {
		ind, _, err := address.ParseIndex(tail, 0)
		if err != nil {
			return 0, wrap(CategoryParsing, err)
		}
		ctx := address.ResolveCtx{Buf: buf, SelA: c.Sel.A, SelB: c.Sel.B}
		d, err = address.ResolveInd(ctx, ind, c.Sel.A)
		if err != nil {
			return 0, wrap(CategoryIndexing, err)
		}
	}
	at := d
	if !after {
		at = d - 1
	}
	if err := buf.VerifyIndex(at); err != nil {
		return 0, wrap(CategoryIndexing, err)
	}
	return at, nil
}

func interior(sel buffer.Selection, at int) bool {
	return at > sel.A-1 && at < sel.B
}

func moveCmd(c *ctx, label string, after bool) (bool, error) {
	buf := c.Ed.History.CurrentMut(label)
	at, err := destAt(c, buf, after)
	if err != nil {
		return false, err
	}
	if interior(c.Sel, at) {
		return false, wrap(CategoryState, ErrNoOp)
	}
	shiftIfAfter := at >= c.Sel.B
	moved, err := buf.Delete(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	if shiftIfAfter {
		at -= c.Sel.Len()
	}
	if err := buf.Insert(at, moved); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(moved)}
	return false, nil
}

func copyCmd(c *ctx, label string, after bool) (bool, error) {
	buf := c.Ed.History.CurrentMut(label)
	at, err := destAt(c, buf, after)
	if err != nil {
		return false, err
	}
	src, err := buf.Range(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	copied := clipboard.DetachAll(src)
	if err := buf.Insert(at, copied); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(copied)}
	return false, nil
}

func cmdM(c *ctx) (bool, error)      { return moveCmd(c, "m", true) }
func cmdMUpper(c *ctx) (bool, error) { return moveCmd(c, "M", false) }
func cmdT(c *ctx) (bool, error)      { return copyCmd(c, "t", true) }
func cmdTUpper(c *ctx) (bool, error) { return copyCmd(c, "T", false) }
