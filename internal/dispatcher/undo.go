package dispatcher

import (
	"fmt"
	"strconv"
	"strings"
)

func printHistoryWindow(c *ctx) error {
	entries := c.Ed.History.ListWindow(5, 4)
	var b strings.Builder
	for _, e := range entries {
		marker := " "
		if e.Current {
			marker = "*"
		}
		saved := ""
		if e.Saved {
			saved = " (saved)"
		}
		fmt.Fprintf(&b, "%s%3d  %s%s\n", marker, e.Index, e.Label, saved)
	}
	return c.UI.PrintMessage(strings.TrimSuffix(b.String(), "\n"))
}

func cmdU(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	tail := strings.TrimSpace(c.Tail)
	if tail == "?" {
		return false, printHistoryWindow(c)
	}

	n := 1
	if tail != "" {
		parsed, err := strconv.Atoi(tail)
		if err != nil {
			return false, wrap(CategoryParsing, ErrUndoStepsNotInt)
		}
		n = parsed
	}

	if n == 0 {
		return false, wrap(CategoryState, ErrNoOp)
	}
	if n > 0 {
		if err := c.Ed.History.Undo(n); err != nil {
			return false, wrap(CategoryState, err)
		}
		return false, nil
	}
	if err := c.Ed.History.Redo(-n); err != nil {
		return false, wrap(CategoryState, err)
	}
	return false, nil
}
