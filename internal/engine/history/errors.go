package history

import "errors"

// Errors returned by History operations.
var (
	// ErrViewedIndexOutOfRange indicates SetViewedIndex received an index
	// outside [0, len(snapshots)).
	ErrViewedIndexOutOfRange = errors.New("history: viewed index out of range")

	// ErrUndoIndexNegative indicates an undo step count would move the
	// viewed index below 0.
	ErrUndoIndexNegative = errors.New("history: undo would move before the first snapshot")

	// ErrUndoIndexTooBig indicates a redo step count would move the
	// viewed index past the last snapshot.
	ErrUndoIndexTooBig = errors.New("history: redo would move past the last snapshot")
)
