package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/gosed/ed/internal/ui"
)

// Terminal is the interactive UI: command lines and input blocks read
// from an io.Reader (normally os.Stdin), output written to an
// io.Writer (normally os.Stdout).
type Terminal struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	seeded []string
}

// New returns a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// NewStdio returns a Terminal wired to os.Stdin/os.Stdout.
func NewStdio() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// DetectScrollLines reports the terminal's current row count via
// golang.org/x/term, for a host that wants to default the scroll
// window to the real screen height instead of the config/built-in
// constant. ok is false when stdout isn't a terminal (a pipe, a file,
// a test harness).
func DetectScrollLines() (rows int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	_, h, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return h, true
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// GetCommand implements ui.UI.
func (t *Terminal) GetCommand(prefix string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prefix != "" {
		fmt.Fprint(t.out, prefix)
	}
	return t.readLine()
}

// GetInput implements ui.UI. If a prior SeedInput call is pending, its
// lines are echoed first as a starting point for the user to re-enter
// or amend — this terminal has no in-place editing surface to pre-fill
// a buffer with, so it offers the seed as visible text instead.
func (t *Terminal) GetInput(terminator string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.seeded) > 0 {
		for _, l := range t.seeded {
			fmt.Fprint(t.out, l)
		}
		t.seeded = nil
	}

	var out []string
	for {
		text, err := t.readLine()
		if err != nil {
			return out, err
		}
		if text == terminator {
			return out, nil
		}
		out = append(out, text+"\n")
	}
}

// SeedInput implements ui.UI.
func (t *Terminal) SeedInput(lines []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seeded = lines
	return nil
}

// PrintMessage implements ui.UI.
func (t *Terminal) PrintMessage(msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

// PrintSelection implements ui.UI.
func (t *Terminal) PrintSelection(lines []ui.Line, numbered, literal bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range lines {
		if _, err := fmt.Fprintln(t.out, formatLine(l, numbered, literal)); err != nil {
			return err
		}
	}
	return nil
}

// LockUI/UnlockUI bracket handing the terminal's stdio to a
// subprocess: the run loop must not attempt to read a command line
// concurrently with a child process inheriting the same descriptors.
func (t *Terminal) LockUI() error {
	t.mu.Lock()
	return nil
}

func (t *Terminal) UnlockUI() error {
	t.mu.Unlock()
	return nil
}

func formatLine(l ui.Line, numbered, literal bool) string {
	text := l.Text
	if literal {
		text = quoteLiteral(text) + "$"
	}
	if !numbered {
		return text
	}
	tag := ""
	if l.Tag != 0 {
		tag = string(l.Tag)
	}
	return fmt.Sprintf("%d%s\t%s", l.Index, tag, text)
}

func quoteLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString("^I")
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\%03o`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
