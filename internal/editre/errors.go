package editre

import "errors"

var (
	// ErrInvalid indicates a pattern failed to compile.
	ErrInvalid = errors.New("editre: invalid regular expression")

	// ErrNoMatch indicates a compiled pattern matched nothing in the
	// text it was run against.
	ErrNoMatch = errors.New("editre: no match")
)
