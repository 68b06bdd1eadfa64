// Package macro stores named command-text macros and expands their
// $0/$N/$$ argument placeholders, validating argument arity before
// expansion. Persistence round-trips a macro store through a JSON file
// using gjson/sjson path access rather than fixed encoding/json
// structs, so a hand-edited macro file with extra fields still loads.
package macro
