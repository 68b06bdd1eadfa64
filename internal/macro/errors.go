package macro

import "errors"

var (
	// ErrUndefined indicates no macro is registered under the given name.
	ErrUndefined = errors.New("macro: undefined")

	// ErrWrongArgCount indicates the call's argument count does not
	// satisfy the macro's declared Arity.
	ErrWrongArgCount = errors.New("macro: wrong number of arguments")

	// ErrNameEmpty indicates an attempt to define a macro under an
	// empty name.
	ErrNameEmpty = errors.New("macro: name must not be empty")
)
