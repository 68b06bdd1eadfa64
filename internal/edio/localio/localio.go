package localio

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/ui"
)

// IO is the production edio.IO, backed by the real filesystem and
// /bin/sh subprocesses.
type IO struct{}

// New returns a ready-to-use IO.
func New() *IO { return &IO{} }

// ReadFile implements edio.IO.
func (IO) ReadFile(path string, mustExist bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// WriteFile implements edio.IO.
func (IO) WriteFile(path string, mode edio.WriteMode, lines []string) (int, error) {
	var flag int
	switch mode {
	case edio.Create:
		flag = os.O_CREATE | os.O_EXCL | os.O_WRONLY
	case edio.Append:
		flag = os.O_CREATE | os.O_APPEND | os.O_WRONLY
	default:
		flag = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	for _, l := range lines {
		m, werr := f.WriteString(l)
		n += m
		if werr != nil {
			return n, werr
		}
	}
	return n, nil
}

func shellCmd(cmd string) *exec.Cmd { return exec.Command("sh", "-c", cmd) }

// RunCommand implements edio.IO: the shell inherits the real process
// stdio, so RunCommand holds LockUI itself for the length of the call.
func (IO) RunCommand(u ui.UI, cmd string) error {
	if err := u.LockUI(); err != nil {
		return err
	}
	defer u.UnlockUI()

	c := shellCmd(cmd)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return classify(c.Run())
}

// RunReadCommand implements edio.IO.
func (IO) RunReadCommand(u ui.UI, cmd string) (string, error) {
	if err := u.LockUI(); err != nil {
		return "", err
	}
	defer u.UnlockUI()

	c := shellCmd(cmd)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return "", classify(err)
	}
	return out.String(), nil
}

// RunWriteCommand implements edio.IO.
func (IO) RunWriteCommand(u ui.UI, cmd string, lines []string) (int, error) {
	if err := u.LockUI(); err != nil {
		return 0, err
	}
	defer u.UnlockUI()

	c := shellCmd(cmd)
	in := strings.Join(lines, "")
	c.Stdin = strings.NewReader(in)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return 0, classify(err)
	}
	return len(in), nil
}

// RunTransformCommand implements edio.IO.
func (IO) RunTransformCommand(u ui.UI, cmd string, lines []string) (string, error) {
	if err := u.LockUI(); err != nil {
		return "", err
	}
	defer u.UnlockUI()

	c := shellCmd(cmd)
	in := strings.Join(lines, "")
	c.Stdin = strings.NewReader(in)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return "", classify(err)
	}
	return out.String(), nil
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ee.ExitCode() < 0 {
			return edio.ErrChildKilledBySignal
		}
		return &edio.ChildExitError{Code: ee.ExitCode()}
	}
	return err
}
