// Package line defines the atomic text unit shared by every buffer
// snapshot in the editor's history.
//
// A Line's text is immutable once constructed; its tag and match stack
// are held behind a shared handle so that a snapshot clone (a cheap
// copy of a []Line) still observes mutations made to a Line that
// survives into later snapshots, per the editor's revert-undo model.
package line
