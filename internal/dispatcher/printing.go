package dispatcher

import (
	"github.com/gosed/ed/internal/cmdline"
	"github.com/gosed/ed/internal/ui"
)

func printSelection(c *ctx, cmdFlag byte) (bool, error) {
	flags, err := cmdline.ParseFlags(c.Tail, "pnl")
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	if cmdFlag != 0 {
		flags[cmdFlag] = true
	}
	numbered := c.Ed.N != flags['n']
	literal := c.Ed.L != flags['l']

	lines, err := c.Ed.History.Current().Range(c.Sel)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	out := make([]ui.Line, len(lines))
	for i, l := range lines {
		out[i] = ui.Line{Index: c.Sel.A + i, Tag: l.Tag(), Text: l.TrimmedText()}
	}
	return false, c.UI.PrintSelection(out, numbered, literal)
}

func cmdPrintDefault(c *ctx) (bool, error) { return printSelection(c, 'p') }
func cmdPrintP(c *ctx) (bool, error)       { return printSelection(c, 'p') }
func cmdPrintN(c *ctx) (bool, error)       { return printSelection(c, 'n') }
func cmdPrintL(c *ctx) (bool, error)       { return printSelection(c, 'l') }
