package line

import "errors"

// Errors returned while constructing or validating a Line.
var (
	// ErrMissingNewline indicates text did not end with exactly one newline.
	ErrMissingNewline = errors.New("line: text missing trailing newline")

	// ErrEmbeddedNewline indicates text contained a newline before its end.
	ErrEmbeddedNewline = errors.New("line: text contains embedded newline")

	// ErrTagInvalid indicates more than one character was given as a tag.
	ErrTagInvalid = errors.New("line: tag must be a single character or empty")
)
