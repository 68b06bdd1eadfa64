// Package address implements the editor's address language: the
// leading `[address[,address|;address]]` region of a command line.
//
// ParseSelection runs a hand-written, single-pass scanner over the
// input (mirroring the other-examples ed clone's address-range parser
// and the teacher's own preference for hand-rolled tokenizers over a
// parser-combinator library) and produces a small AST (Ind, Selection)
// that Resolve later maps against the editor's current state into a
// concrete, inclusive 1-indexed buffer.Selection.
package address
