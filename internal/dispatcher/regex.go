package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/cmdline"
	"github.com/gosed/ed/internal/editor"
	"github.com/gosed/ed/internal/editre"
	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/ui"
)

func printIfFlagged(c *ctx, flags cmdline.Flags) error {
	if !flags['p'] && !flags['n'] && !flags['l'] {
		return nil
	}
	numbered := c.Ed.N != flags['n']
	literal := c.Ed.L != flags['l']
	lines, err := c.Ed.History.Current().Range(c.Ed.Selection)
	if err != nil {
		return wrap(CategoryIndexing, err)
	}
	out := make([]ui.Line, len(lines))
	for i, l := range lines {
		out[i] = ui.Line{Index: c.Ed.Selection.A + i, Tag: l.Tag(), Text: l.TrimmedText()}
	}
	return c.UI.PrintSelection(out, numbered, literal)
}

func cmdS(c *ctx) (bool, error) {
	var pattern, replacement, flagsTail string

	if c.Tail == "" {
		if c.Ed.PrevS == nil {
			return false, wrap(CategoryState, ErrDefaultSArgsUnset)
		}
		pattern = c.Ed.PrevS.Pattern
		replacement = c.Ed.PrevS.Replacement
		if c.Ed.PrevS.Global {
			flagsTail = "g"
		}
	} else {
		_, parts, rest, _, err := cmdline.SplitSepParts(c.Tail, 2)
		if err != nil {
			return false, wrap(CategoryParsing, err)
		}
		pattern, replacement, flagsTail = parts[0], parts[1], rest
	}

	flags, err := cmdline.ParseFlags(flagsTail, "gpnl")
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	global := flags['g']

	re, err := editre.Compile(pattern)
	if err != nil {
		return false, wrap(CategoryParsing, err)
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
	joined := strings.Join(texts, "\n")

	decoded := editre.DecodeReplacement(replacement)
	result, ok := re.Substitute(joined, decoded, global)
	if !ok {
		return false, wrap(CategoryParsing, editre.ErrNoMatch)
	}

	pieces := strings.Split(result, "\n")
	withNL := make([]string, len(pieces))
	for i, p := range pieces {
		withNL[i] = p + "\n"
	}
	newLines, err := toLines(withNL)
	if err != nil {
		return false, err
	}

	buf := c.Ed.History.CurrentMut("s")
	removed, err := buf.Replace(c.Sel, newLines)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, len(newLines), buf.Len())
	c.Ed.PrevS = &editor.Substitution{Pattern: pattern, Replacement: replacement, Global: global}

	return false, printIfFlagged(c, flags)
}

// markMatching implements spec.md 4.5's mark_matching: every line in
// sel gets its match stack truncated to depth and a fresh entry pushed
// (match XOR invert); every line outside sel is merely truncated to
// depth, discarding stale marks from an earlier invocation at the same
// nesting level.
func markMatching(buf *buffer.Buffer, sel buffer.Selection, re *editre.Regex, invert bool, depth int) bool {
	any := false
	n := buf.Len()
	for i := 1; i <= n; i++ {
		l, _ := buf.Get(i)
		l.TruncateMatched(depth)
		if i >= sel.A && i <= sel.B {
			m := re.MatchString(l.TrimmedText()) != invert
			l.PushMatched(depth, m)
			if m {
				any = true
			}
		}
	}
	return any
}

// getMarked implements get_marked: the lowest line marked at depth,
// consumed (truncated back to depth) on return.
func getMarked(buf *buffer.Buffer, depth int) (int, bool) {
	n := buf.Len()
	for i := 1; i <= n; i++ {
		l, _ := buf.Get(i)
		if l.Matched(depth) {
			l.TruncateMatched(depth)
			return i, true
		}
	}
	return 0, false
}

func globalSetup(c *ctx, invert bool) (sep byte, rest string, open bool, markDepth int, err error) {
	var parts []string
	sep, parts, rest, open, err = cmdline.SplitSepParts(c.Tail, 1)
	if err != nil {
		return 0, "", false, 0, wrap(CategoryParsing, err)
	}
	re, err := editre.Compile(parts[0])
	if err != nil {
		return 0, "", false, 0, wrap(CategoryParsing, err)
	}
	markDepth = c.Depth + 1
	if markDepth > c.Ed.RecursionLimit {
		return 0, "", false, 0, wrap(CategoryState, ErrInfiniteRecursion)
	}
	if !markMatching(c.Ed.History.Current(), c.Sel, re, invert, markDepth) {
		return 0, "", false, 0, wrap(CategoryParsing, editre.ErrNoMatch)
	}
	return sep, rest, open, markDepth, nil
}

func globalCmd(c *ctx, invert bool) (bool, error) {
	sep, rest, open, depth, err := globalSetup(c, invert)
	if err != nil {
		return false, err
	}

	var cmds []string
	switch {
	case rest != "":
		cmds = []string{rest}
	case open:
		lines, gerr := c.UI.GetInput(string(sep))
		if gerr != nil {
			return false, wrap(CategoryUI, gerr)
		}
		cmds = make([]string, len(lines))
		for i, l := range lines {
			cmds[i] = strings.TrimSuffix(l, "\n")
		}
	default:
		cmds = []string{"p"}
	}

	for {
		idx, ok := getMarked(c.Ed.History.Current(), depth)
		if !ok {
			break
		}
		c.Ed.Selection = buffer.Selection{A: idx, B: idx}
		for _, cl := range cmds {
			quit, rerr := runAtDepth(c.Ed, c.UI, c.IO, cl, depth)
			if rerr != nil {
				return quit, rerr
			}
			if quit {
				return true, nil
			}
		}
	}
	return false, nil
}

func interactiveGlobalCmd(c *ctx, invert bool) (bool, error) {
	sep, _, _, depth, err := globalSetup(c, invert)
	if err != nil {
		return false, err
	}

	for {
		idx, ok := getMarked(c.Ed.History.Current(), depth)
		if !ok {
			break
		}
		c.Ed.Selection = buffer.Selection{A: idx, B: idx}
		if perr := printWindow(c, c.Ed.Selection); perr != nil {
			return false, perr
		}
		lines, gerr := c.UI.GetInput(string(sep))
		if gerr != nil {
			return false, wrap(CategoryUI, gerr)
		}
		for _, l := range lines {
			quit, rerr := runAtDepth(c.Ed, c.UI, c.IO, strings.TrimSuffix(l, "\n"), depth)
			if rerr != nil {
				return quit, rerr
			}
			if quit {
				return true, nil
			}
		}
	}
	return false, nil
}

func cmdG(c *ctx) (bool, error)      { return globalCmd(c, false) }
func cmdV(c *ctx) (bool, error)      { return globalCmd(c, true) }
func cmdGUpper(c *ctx) (bool, error) { return interactiveGlobalCmd(c, false) }
func cmdVUpper(c *ctx) (bool, error) { return interactiveGlobalCmd(c, true) }
