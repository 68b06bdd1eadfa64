package editre

import (
	"fmt"
	"regexp"
	"strings"
)

// Regex is a compiled, multi-line pattern.
type Regex struct {
	re *regexp.Regexp
}

// Compile compiles pattern with multi-line matching enabled, so "^" and
// "$" bind to the start and end of each line within whatever text the
// pattern is run against, not just the start/end of the whole string.
func Compile(pattern string) (*Regex, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, pattern)
	}
	return &Regex{re: re}, nil
}

// MatchString reports whether the pattern matches anywhere in s.
func (r *Regex) MatchString(s string) bool { return r.re.MatchString(s) }

// Substitute replaces the pattern's matches in s with repl (already
// decoded by DecodeReplacement). repl is spliced in literally; it is
// never interpreted as a regexp expansion template, so it has no
// backreference syntax. If all is false, only the first match is
// replaced; otherwise every non-overlapping match is. Returns the
// result and whether any replacement occurred.
func (r *Regex) Substitute(s, repl string, all bool) (string, bool) {
	if !all {
		loc := r.re.FindStringIndex(s)
		if loc == nil {
			return s, false
		}
		return s[:loc[0]] + repl + s[loc[1]:], true
	}
	locs := r.re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s, false
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String(), true
}

// DecodeReplacement turns the command language's replacement-text
// escapes into literal text: \\ becomes \, \n/\r/\t become their
// control characters, and \<anything else> is left untouched, backslash
// and all, since the replacement has no backreference syntax to escape.
func DecodeReplacement(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			out = append(out, c)
			continue
		}
		next := s[i+1]
		switch next {
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, '\\', next)
		}
		i++
	}
	return string(out)
}
