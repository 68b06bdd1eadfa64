package edio

import "errors"

var (
	// ErrChildKilledBySignal indicates a subprocess died to a signal
	// rather than exiting normally.
	ErrChildKilledBySignal = errors.New("edio: child process killed by signal")
)

// ChildExitError reports a subprocess that exited with a non-zero code.
type ChildExitError struct {
	Code int
}

func (e *ChildExitError) Error() string {
	return "edio: child process exited with a non-zero status"
}
