package scripted

import (
	"fmt"

	"github.com/gosed/ed/internal/ui"
)

// Print records one PrintMessage or PrintSelection invocation.
type Print struct {
	Text     []string
	Numbered bool
	Literal  bool
}

// UI serves command and input lines from a fixed queue; when the
// queue runs dry, GetCommand falls back to "Q" so a runaway script (or
// a macro recursing past its input) terminates instead of blocking.
// Every print is appended to PrintsHistory; if Forward is set, prints
// are also relayed to it (e.g. a term.Terminal, so `-script` output is
// still visible).
type UI struct {
	Lines         []string
	PrintsHistory []Print
	Forward       ui.UI

	seeded []string
	pos    int
}

// New returns a UI that serves lines in order.
func New(lines []string) *UI {
	return &UI{Lines: lines}
}

func (u *UI) next() (string, bool) {
	if u.pos >= len(u.Lines) {
		return "", false
	}
	l := u.Lines[u.pos]
	u.pos++
	return l, true
}

// GetCommand implements ui.UI.
func (u *UI) GetCommand(prefix string) (string, error) {
	if l, ok := u.next(); ok {
		return l, nil
	}
	return "Q", nil
}

// GetInput implements ui.UI.
func (u *UI) GetInput(terminator string) ([]string, error) {
	var out []string
	if len(u.seeded) > 0 {
		out = append(out, u.seeded...)
		u.seeded = nil
	}
	for {
		l, ok := u.next()
		if !ok {
			return out, nil
		}
		if l == terminator {
			return out, nil
		}
		out = append(out, l+"\n")
	}
}

// SeedInput implements ui.UI.
func (u *UI) SeedInput(lines []string) error {
	u.seeded = lines
	return nil
}

// PrintMessage implements ui.UI.
func (u *UI) PrintMessage(msg string) error {
	u.PrintsHistory = append(u.PrintsHistory, Print{Text: []string{msg}})
	if u.Forward != nil {
		return u.Forward.PrintMessage(msg)
	}
	return nil
}

// PrintSelection implements ui.UI.
func (u *UI) PrintSelection(lines []ui.Line, numbered, literal bool) error {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	u.PrintsHistory = append(u.PrintsHistory, Print{Text: texts, Numbered: numbered, Literal: literal})
	if u.Forward != nil {
		return u.Forward.PrintSelection(lines, numbered, literal)
	}
	return nil
}

// LockUI/UnlockUI are no-ops: a script has no live stdio to hand off.
func (u *UI) LockUI() error   { return nil }
func (u *UI) UnlockUI() error { return nil }

var _ fmt.Stringer = (*UI)(nil)

// String renders the printed history, useful in test failure output.
func (u *UI) String() string {
	s := ""
	for _, p := range u.PrintsHistory {
		for _, t := range p.Text {
			s += t + "\n"
		}
	}
	return s
}
