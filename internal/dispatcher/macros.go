package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/macro"
)

// cmdMacro implements ":name arg1 arg2 …": the expanded text runs as
// if typed at the UI, one command per line, bracketed in a single
// undo step (the outermost invocation pushes the snapshot and
// suspends further snapshotting; a macro invoked from inside another
// macro's expansion rides the outer one's step).
func cmdMacro(c *ctx) (bool, error) {
	fields := strings.Fields(c.Tail)
	if len(fields) == 0 {
		return false, wrap(CategoryParsing, macro.ErrNameEmpty)
	}
	name, args := fields[0], fields[1:]

	if c.Depth+1 > c.Ed.RecursionLimit {
		return false, wrap(CategoryState, ErrInfiniteRecursion)
	}

	text, err := macro.Expand(c.Ed.Macros, name, args)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}

	h := c.Ed.History
	topLevel := !h.DontSnapshot
	if topLevel {
		h.PushLabelled(":" + strings.TrimSpace(c.Tail))
		h.DontSnapshot = true
	}

	var quit bool
	var runErr error
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		q, rerr := runAtDepth(c.Ed, c.UI, c.IO, line, c.Depth+1)
		if rerr != nil {
			runErr = rerr
			quit = q
			break
		}
		if q {
			quit = true
			break
		}
	}

	if topLevel {
		h.DontSnapshot = false
		h.DedupPresent()
	}
	return quit, runErr
}
