// Package cmdline parses the tail of a command line: the text after
// the address region and command character. It implements the three
// tail shapes the dispatcher needs: fixed flag sets (e.g. "pnl"),
// separator-delimited expression lists (for s/g/v/G/V), and paths (a
// bare file path or a "!"-prefixed shell command, with "%"/"!"
// default-substitution).
package cmdline
