package fakeio

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/ui"
)

// ErrNotFound indicates ReadFile was asked for a path not present in
// the fake filesystem with mustExist set.
var ErrNotFound = errors.New("fakeio: file not found")

// ErrCommandNotFound indicates a shell command has no matching canned
// response, mirroring /bin/sh's behavior for an unknown command.
var ErrCommandNotFound = errors.New("fakeio: command not found")

// shellCall is the key a canned shell response is registered under:
// the command text plus whatever stdin it is expected to receive.
type shellCall struct {
	command string
	input   string
}

// IO is an in-memory edio.IO. Tests populate Files and Shell directly
// before running a script against it.
type IO struct {
	Files map[string]string
	Shell map[shellCall]string
}

// New returns an empty IO.
func New() *IO {
	return &IO{
		Files: make(map[string]string),
		Shell: make(map[shellCall]string),
	}
}

// StubCommand registers cmd (given stdin) to produce output, for
// RunReadCommand/RunTransformCommand, and to simply succeed for
// RunCommand/RunWriteCommand.
func (io *IO) StubCommand(cmd, stdin, output string) {
	io.Shell[shellCall{command: cmd, input: stdin}] = output
}

// ReadFile implements edio.IO.
func (io *IO) ReadFile(path string, mustExist bool) (string, error) {
	data, ok := io.Files[path]
	if !ok {
		if mustExist {
			return "", ErrNotFound
		}
		return "", nil
	}
	return data, nil
}

// WriteFile implements edio.IO.
func (io *IO) WriteFile(path string, mode edio.WriteMode, lines []string) (int, error) {
	var base string
	if _, exists := io.Files[path]; exists && mode == edio.Create {
		return 0, fs.ErrExist
	}
	if mode == edio.Append {
		base = io.Files[path]
	}
	var b strings.Builder
	b.WriteString(base)
	for _, l := range lines {
		b.WriteString(l)
	}
	data := b.String()
	io.Files[path] = data
	return len(data) - len(base), nil
}

// RunCommand implements edio.IO.
func (io *IO) RunCommand(_ ui.UI, cmd string) error {
	if _, ok := io.Shell[shellCall{command: cmd}]; !ok {
		return ErrCommandNotFound
	}
	return nil
}

// RunReadCommand implements edio.IO.
func (io *IO) RunReadCommand(_ ui.UI, cmd string) (string, error) {
	out, ok := io.Shell[shellCall{command: cmd}]
	if !ok {
		return "", ErrCommandNotFound
	}
	return out, nil
}

// RunWriteCommand implements edio.IO.
func (io *IO) RunWriteCommand(_ ui.UI, cmd string, lines []string) (int, error) {
	input := strings.Join(lines, "")
	if _, ok := io.Shell[shellCall{command: cmd, input: input}]; !ok {
		return 0, ErrCommandNotFound
	}
	return len(input), nil
}

// RunTransformCommand implements edio.IO.
func (io *IO) RunTransformCommand(_ ui.UI, cmd string, lines []string) (string, error) {
	input := strings.Join(lines, "")
	out, ok := io.Shell[shellCall{command: cmd, input: input}]
	if !ok {
		return "", ErrCommandNotFound
	}
	return out, nil
}
