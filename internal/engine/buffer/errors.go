package buffer

import "errors"

// Errors returned by Buffer operations.
var (
	// ErrIndexTooBig indicates an index beyond the legal append position.
	ErrIndexTooBig = errors.New("buffer: index beyond end of buffer")

	// ErrLine0Invalid indicates line 0 was used where a real line is required.
	ErrLine0Invalid = errors.New("buffer: line 0 is not a valid line")

	// ErrSelectionEmpty indicates an operation received an empty selection.
	ErrSelectionEmpty = errors.New("buffer: selection is empty")

	// ErrSelectionInverted indicates a selection's start exceeds its end.
	ErrSelectionInverted = errors.New("buffer: selection start after end")
)
