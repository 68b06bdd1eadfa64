// Package buffer implements the editor's line-addressed text buffer.
//
// A Buffer is a 1-indexed, ordered sequence of line.Line values. Index
// 0 is a legal *append* position (insert-before-first / append-at-end)
// but never a legal *line*. All mutating operations validate their
// indices against the buffer's current length before touching
// anything, so a failed operation never leaves a partially-applied
// edit.
package buffer
