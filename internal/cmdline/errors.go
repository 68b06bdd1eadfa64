package cmdline

import "errors"

var (
	// ErrFlagDuplicate indicates the same flag letter appeared twice.
	ErrFlagDuplicate = errors.New("cmdline: flag given more than once")

	// ErrFlagUndefined indicates a tail character outside the allowed flag set.
	ErrFlagUndefined = errors.New("cmdline: undefined flag")

	// ErrArgumentListEscapedEnd indicates an expression list ended on an
	// escaped separator with nothing following.
	ErrArgumentListEscapedEnd = errors.New("cmdline: expression list ends on an escaped separator")

	// ErrDefaultFileUnset indicates "%" was used with no default file set.
	ErrDefaultFileUnset = errors.New("cmdline: no default file set")

	// ErrDefaultShellCommandUnset indicates "!" was used with no prior
	// shell command to substitute.
	ErrDefaultShellCommandUnset = errors.New("cmdline: no default shell command set")

	// ErrCommandEscapeForbidden indicates a "!"-prefixed path was given
	// somewhere only a plain file path is allowed.
	ErrCommandEscapeForbidden = errors.New("cmdline: shell command not allowed here")
)
