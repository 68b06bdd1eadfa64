// Package term is the interactive UI: command lines and input blocks
// read from os.Stdin, output written to os.Stdout, grounded on the
// line-reading conventions of github.com/tinkerator/lined but kept to
// plain buffered line reads since the command language has no need
// for in-line editing beyond what the terminal driver already gives
// it in cooked mode.
package term
