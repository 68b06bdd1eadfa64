package address

import "errors"

// Errors returned while parsing or resolving an address.
var (
	// ErrIndexNotInt indicates a literal line number overflowed.
	ErrIndexNotInt = errors.New("address: line number out of range")

	// ErrOffsetNotInt indicates an offset magnitude overflowed.
	ErrOffsetNotInt = errors.New("address: offset out of range")

	// ErrIndicesUnrelated indicates a digit run followed a completed
	// index with no +/- operator between them.
	ErrIndicesUnrelated = errors.New("address: digits after an index must be an offset (+/-)")

	// ErrIndexUnfinished indicates a trailing "'" with no tag character.
	ErrIndexUnfinished = errors.New("address: ' requires a following tag character")

	// ErrIndexSpecialAfterStart indicates a special starter (. $ ' / ?)
	// appeared somewhere other than the start of an address.
	ErrIndexSpecialAfterStart = errors.New("address: special address form must start the address")

	// ErrTagNoMatch indicates no line carries the requested tag.
	ErrTagNoMatch = errors.New("address: no line has that tag")

	// ErrRegexInvalid indicates a pattern address failed to compile.
	ErrRegexInvalid = errors.New("address: invalid regular expression")

	// ErrRegexNoMatch indicates a pattern address matched no line.
	ErrRegexNoMatch = errors.New("address: no line matches")
)
