package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/cmdline"
)

const noFileMessage = "no file set"

func cmdF(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	arg := strings.TrimLeft(c.Tail, " \t")
	if arg == "" {
		if c.Ed.File == "" {
			return false, c.UI.PrintMessage(noFileMessage)
		}
		return false, c.UI.PrintMessage(c.Ed.File)
	}
	isShell, value, err := cmdline.ParsePath(c.Tail, c.Ed.File, c.Ed.PrevShellCommand)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	if isShell {
		return false, wrap(CategoryState, ErrCommandEscapeForbidden)
	}
	c.Ed.File = value
	return false, nil
}
