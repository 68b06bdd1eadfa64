package history

import (
	"fmt"

	"github.com/gosed/ed/internal/engine/buffer"
)

// Snapshot is one labelled entry in a History.
type Snapshot struct {
	Label string
	Buf   *buffer.Buffer
}

// History is an append-only vector of buffer snapshots with a cursor
// into the currently-viewed one.
type History struct {
	snapshots []Snapshot
	viewedI   int
	savedI    *int

	// DontSnapshot suppresses snapshot creation in CurrentMut, used to
	// bracket macro execution so one macro invocation yields one undo
	// step. Set directly by callers bracketing a macro; see
	// PushLabelled/DedupPresent below.
	DontSnapshot bool
}

// New returns a History with a single empty "initial load" snapshot.
func New() *History {
	return &History{
		snapshots: []Snapshot{{Label: "initial load", Buf: buffer.New()}},
	}
}

// Current returns the currently-viewed buffer, read-only by convention.
func (h *History) Current() *buffer.Buffer {
	return h.snapshots[h.viewedI].Buf
}

// CurrentLabel returns the label of the currently-viewed snapshot.
func (h *History) CurrentLabel() string {
	return h.snapshots[h.viewedI].Label
}

// ViewedIndex returns the index of the currently-viewed snapshot.
func (h *History) ViewedIndex() int { return h.viewedI }

// Len returns the number of snapshots recorded so far.
func (h *History) Len() int { return len(h.snapshots) }

// CurrentMut is the sole gate for mutation. It is called once per
// editing command, before that command's buffer mutations, and
// returns the buffer those mutations should apply to.
//
// If viewing a snapshot older than the tail, a revert snapshot
// (content equal to the one currently viewed) is pushed first, so the
// undone future remains reachable by further redo. Then, unless
// DontSnapshot is set, a fresh clone is pushed and becomes current.
func (h *History) CurrentMut(label string) *buffer.Buffer {
	if h.viewedI < len(h.snapshots)-1 {
		undone := len(h.snapshots) - 1 - h.viewedI
		h.push(fmt.Sprintf("revert of %d undone operation(s)", undone), h.snapshots[h.viewedI].Buf.Clone())
	}
	if !h.DontSnapshot {
		h.push(label, h.snapshots[h.viewedI].Buf.Clone())
	}
	return h.snapshots[h.viewedI].Buf
}

// PushLabelled unconditionally appends a clone of the current snapshot
// under label and makes it current, ignoring DontSnapshot. Used to
// create the single up-front snapshot for a macro invocation, which is
// then mutated in place for the macro's whole execution.
func (h *History) PushLabelled(label string) *buffer.Buffer {
	h.push(label, h.snapshots[h.viewedI].Buf.Clone())
	return h.snapshots[h.viewedI].Buf
}

func (h *History) push(label string, buf *buffer.Buffer) {
	h.snapshots = append(h.snapshots, Snapshot{Label: label, Buf: buf})
	h.viewedI = len(h.snapshots) - 1
}

// SetSaved marks the currently-viewed snapshot as the on-disk state,
// unless DontSnapshot is set (mid-macro), in which case it clears the
// saved marker instead: a macro step never gets to claim "this exact
// point is saved" since its internal snapshot is provisional.
func (h *History) SetSaved() {
	if h.DontSnapshot {
		h.savedI = nil
		return
	}
	v := h.viewedI
	h.savedI = &v
}

// Saved reports whether the currently-viewed snapshot is the
// last-marked-saved one.
func (h *History) Saved() bool {
	return h.savedI != nil && *h.savedI == h.viewedI
}

// SetViewedIndex moves the viewing cursor.
func (h *History) SetViewedIndex(n int) error {
	if n < 0 || n >= len(h.snapshots) {
		return ErrViewedIndexOutOfRange
	}
	h.viewedI = n
	return nil
}

// Undo moves the viewing cursor back by n (n > 0). Moving before the
// first snapshot is an error and leaves the cursor unmoved.
func (h *History) Undo(n int) error {
	target := h.viewedI - n
	if target < 0 {
		return ErrUndoIndexNegative
	}
	h.viewedI = target
	return nil
}

// Redo moves the viewing cursor forward by n (n > 0). Moving past the
// last snapshot is an error and leaves the cursor unmoved.
func (h *History) Redo(n int) error {
	target := h.viewedI + n
	if target >= len(h.snapshots) {
		return ErrUndoIndexTooBig
	}
	h.viewedI = target
	return nil
}

// DedupPresent pops the top snapshot iff its content equals the one
// below it, avoiding an empty extra snapshot after a macro whose
// execution made no net change.
func (h *History) DedupPresent() {
	n := len(h.snapshots)
	if n < 2 {
		return
	}
	top, below := h.snapshots[n-1], h.snapshots[n-2]
	if !sameContent(top.Buf, below.Buf) {
		return
	}
	h.snapshots = h.snapshots[:n-1]
	if h.viewedI == n-1 {
		h.viewedI = n - 2
	}
}

func sameContent(a, b *buffer.Buffer) bool {
	if a.Len() != b.Len() {
		return false
	}
	al, bl := a.All(), b.All()
	for i := range al {
		if al[i].Text() != bl[i].Text() {
			return false
		}
	}
	return true
}

// ListWindow returns a slice of (index, Snapshot) describing the
// windowed view used by the history-listing command: the current
// snapshot, up to `before` entries before it and `after` entries after
// it, clamped to the available range.
func (h *History) ListWindow(before, after int) []ListEntry {
	lo := h.viewedI - before
	if lo < 0 {
		lo = 0
	}
	hi := h.viewedI + after
	if hi > len(h.snapshots)-1 {
		hi = len(h.snapshots) - 1
	}
	entries := make([]ListEntry, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		entries = append(entries, ListEntry{
			Index:   i,
			Label:   h.snapshots[i].Label,
			Current: i == h.viewedI,
			Saved:   h.savedI != nil && *h.savedI == i,
		})
	}
	return entries
}

// ListEntry describes one row of a history-listing command's output.
type ListEntry struct {
	Index   int
	Label   string
	Current bool
	Saved   bool
}
