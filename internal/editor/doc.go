// Package editor holds the editor's mutable state: the current
// selection, clipboard, file path, shell-command/regex memory, display
// flags, macro store, history handle, and recursion limit. It is the Go
// analogue of the teacher's internal/app package, generalized from
// keystorm's multi-pane application state to ed's single-buffer model.
package editor
