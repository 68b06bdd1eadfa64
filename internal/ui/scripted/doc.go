// Package scripted is a non-interactive UI: command and input lines
// come from a fixed, pre-loaded queue instead of a live terminal, and
// every print is recorded instead of (or in addition to) being
// written anywhere. Used by cmd/ed -script and by dispatcher tests,
// grounded on original_source's ScriptedUI/MockUI split.
package scripted
