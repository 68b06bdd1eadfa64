// Package dispatcher parses one command line (selection, command
// character, tail) and runs the matching command against an
// editor.Editor, a ui.UI, and an edio.IO. It is a registry of
// command-word -> handler entries, generalized from the teacher's
// action-name keyed dispatch table to ed's command keys (single
// command characters plus a few whole words such as "wq" and "help").
package dispatcher
