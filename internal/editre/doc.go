// Package editre wraps Go's regexp package with the two pieces of
// behavior the command language needs beyond a plain Compile/Replace:
// multi-line matching by default (so "^"/"$" bind to line starts
// inside a selection, mirroring the teacher's own (?m) usage) and a
// backslash-escape decoder for substitution replacement text.
package editre
