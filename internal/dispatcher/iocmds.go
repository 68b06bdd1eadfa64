package dispatcher

import (
	"strings"

	"github.com/gosed/ed/internal/cmdline"
	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/engine/buffer"
)

func isWholeBuffer(buf *buffer.Buffer, sel buffer.Selection) bool {
	if buf.Len() == 0 {
		return sel.IsEmpty()
	}
	return sel.A == 1 && sel.B == buf.Len()
}

func readCommand(c *ctx, path string, isShell bool) (string, error) {
	if isShell {
		text, err := c.IO.RunReadCommand(c.UI, path)
		if err != nil {
			return "", wrap(CategoryIO, err)
		}
		c.Ed.PrevShellCommand = path
		return text, nil
	}
	text, err := c.IO.ReadFile(path, true)
	if err != nil {
		return "", wrap(CategoryIO, err)
	}
	return text, nil
}

func splitReadLines(text string) []string {
	if text == "" {
		return nil
	}
	pieces := strings.SplitAfter(text, "\n")
	if pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	} else {
		pieces[len(pieces)-1] += "\n"
	}
	return pieces
}

func readReplace(c *ctx, checkSaved bool) (bool, error) {
	if checkSaved && !c.Ed.History.Saved() {
		return false, wrap(CategoryState, ErrUnsavedChanges)
	}
	isShell, path, err := cmdline.ParsePath(c.Tail, c.Ed.File, c.Ed.PrevShellCommand)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	text, err := readCommand(c, path, isShell)
	if err != nil {
		return false, err
	}
	newLines, err := toLines(splitReadLines(text))
	if err != nil {
		return false, err
	}

	buf := c.Ed.History.CurrentMut("e")
	if buf.Len() > 0 {
		if _, derr := buf.Delete(buffer.Selection{A: 1, B: buf.Len()}); derr != nil {
			return false, wrap(CategoryIndexing, derr)
		}
	}
	if err := buf.Insert(0, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: 1, B: buf.Len()}
	if !isShell {
		c.Ed.File = path
		c.Ed.History.SetSaved()
	}
	return false, nil
}

func cmdE(c *ctx) (bool, error)  { return readReplace(c, true) }
func cmdEUpper(c *ctx) (bool, error) { return readReplace(c, false) }

func cmdR(c *ctx) (bool, error) {
	isShell, path, err := cmdline.ParsePath(c.Tail, c.Ed.File, c.Ed.PrevShellCommand)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}
	text, err := readCommand(c, path, isShell)
	if err != nil {
		return false, err
	}
	newLines, err := toLines(splitReadLines(text))
	if err != nil {
		return false, err
	}

	at := c.Sel.B
	if !c.SelAST.Explicit() {
		at = c.Ed.History.Current().Len()
	}
	buf := c.Ed.History.CurrentMut("r")
	if err := buf.Insert(at, newLines); err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Selection = buffer.Selection{A: at + 1, B: at + len(newLines)}
	return false, nil
}

func writeSelection(c *ctx) buffer.Selection {
	if c.SelAST.Explicit() {
		return c.Sel
	}
	buf := c.Ed.History.Current()
	return buffer.Selection{A: 1, B: buf.Len()}
}

func selectionTexts(c *ctx, sel buffer.Selection) ([]string, error) {
	lines, err := c.Ed.History.Current().Range(sel)
	if err != nil {
		return nil, wrap(CategoryIndexing, err)
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out, nil
}

func writeCommand(c *ctx, label string, mode edio.WriteMode, markSaved bool) (bool, error) {
	sel := writeSelection(c)
	texts, err := selectionTexts(c, sel)
	if err != nil {
		return false, err
	}

	isShell, path, err := cmdline.ParsePath(c.Tail, c.Ed.File, c.Ed.PrevShellCommand)
	if err != nil {
		return false, wrap(CategoryParsing, err)
	}

	if isShell {
		if mode == edio.Append {
			return false, wrap(CategoryState, ErrCommandEscapeForbidden)
		}
		if _, err := c.IO.RunWriteCommand(c.UI, path, texts); err != nil {
			return false, wrap(CategoryIO, err)
		}
		c.Ed.PrevShellCommand = path
		return false, nil
	}

	if _, err := c.IO.WriteFile(path, mode, texts); err != nil {
		return false, wrap(CategoryIO, err)
	}
	if markSaved {
		c.Ed.File = path
		c.Ed.History.SetSaved()
	}
	return false, nil
}

func cmdW(c *ctx) (bool, error)      { return writeCommand(c, "w", edio.Overwrite, true) }
func cmdWUpper(c *ctx) (bool, error) { return writeCommand(c, "W", edio.Append, false) }

func cmdWQ(c *ctx) (bool, error) {
	buf := c.Ed.History.Current()
	if c.SelAST.Explicit() && !isWholeBuffer(buf, c.Sel) {
		return false, wrap(CategoryIndexing, ErrSelectionForbidden)
	}
	if c.Ed.File == "" {
		return false, wrap(CategoryParsing, cmdline.ErrDefaultFileUnset)
	}
	texts, err := selectionTexts(c, buffer.Selection{A: 1, B: buf.Len()})
	if err != nil {
		return false, err
	}
	if _, err := c.IO.WriteFile(c.Ed.File, edio.Overwrite, texts); err != nil {
		return false, wrap(CategoryIO, err)
	}
	c.Ed.History.SetSaved()
	return true, nil
}

func cmdBang(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	cmd := strings.TrimPrefix(c.Tail, "!")
	if err := c.IO.RunCommand(c.UI, cmd); err != nil {
		return false, wrap(CategoryIO, err)
	}
	c.Ed.PrevShellCommand = cmd
	return false, nil
}

func cmdPipe(c *ctx) (bool, error) {
	cmd := strings.TrimPrefix(c.Tail, "!")
	texts, err := selectionTexts(c, c.Sel)
	if err != nil {
		return false, err
	}
	result, err := c.IO.RunTransformCommand(c.UI, cmd, texts)
	if err != nil {
		return false, wrap(CategoryIO, err)
	}
	c.Ed.PrevShellCommand = cmd

	newLines, err := toLines(splitReadLines(result))
	if err != nil {
		return false, err
	}
	buf := c.Ed.History.CurrentMut("|")
	removed, err := buf.Replace(c.Sel, newLines)
	if err != nil {
		return false, wrap(CategoryIndexing, err)
	}
	c.Ed.Clipboard.Set(removed)
	c.Ed.Selection = buffer.PostDeletionSelection(c.Sel, len(newLines), buf.Len())
	return false, nil
}
