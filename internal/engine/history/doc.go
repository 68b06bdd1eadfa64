// Package history implements the editor's revert-style undo stack: an
// append-only vector of labelled buffer.Buffer snapshots plus a cursor
// (viewedI) into it.
//
// History never rewrites its tail. Undo only moves the cursor
// backwards; resuming an edit after an undo appends a "revert"
// snapshot that restores the currently-viewed content before the new
// edit's own snapshot is pushed, so the undone future stays reachable
// by redoing further forward from the revert point.
package history
