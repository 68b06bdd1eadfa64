package dispatcher

import (
	"github.com/gosed/ed/internal/address"
	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/editor"
	"github.com/gosed/ed/internal/engine/buffer"
	"github.com/gosed/ed/internal/ui"
)

// ctx is the per-command-line context threaded through one handler
// invocation: the resolved editor state, the concrete UI/IO, the
// already-resolved selection, the raw parsed selection AST (so a
// handler can check whether the user wrote an address explicitly),
// and the tail text after the command word.
type ctx struct {
	Ed    *editor.Editor
	UI    ui.UI
	IO    edio.IO
	Sel   buffer.Selection
	SelAST address.Selection
	Cmd   string
	Tail  string
	Depth int
}

// handler runs one command. It returns whether the dispatcher should
// quit, and any error.
type handler func(c *ctx) (bool, error)
