package cmdline

// SplitSepParts splits tail (whose first byte is the separator) into
// nParts separator-delimited pieces plus whatever text remains after
// the nParts-th closing separator. The separator can be escaped inside
// a piece with a backslash to include it literally.
//
// If tail runs out before nParts closing separators are found, the
// missing trailing pieces are empty strings and rest is "". open
// reports whether the final piece was closed by an explicit separator
// with nothing following it on the line (the g/v/G/V "ask the UI for
// more command lines" case); it is false when the final piece simply
// ran to the end of the string unterminated.
func SplitSepParts(tail string, nParts int) (sep byte, parts []string, rest string, open bool, err error) {
	if len(tail) == 0 {
		return 0, make([]string, nParts), "", false, nil
	}
	sep = tail[0]
	pos := 1
	parts = make([]string, 0, nParts)
	for len(parts) < nParts {
		text, next, terminated, escEnd, perr := scanSepPart(tail, pos, sep)
		if perr != nil {
			return sep, nil, "", false, perr
		}
		if escEnd {
			return sep, nil, "", false, ErrArgumentListEscapedEnd
		}
		parts = append(parts, text)
		pos = next
		if !terminated {
			for len(parts) < nParts {
				parts = append(parts, "")
			}
			return sep, parts, "", false, nil
		}
	}
	rest = tail[pos:]
	return sep, parts, rest, rest == "", nil
}

// scanSepPart reads one separator-delimited piece starting at tail[pos].
func scanSepPart(tail string, pos int, sep byte) (text string, next int, terminated, escEnd bool, err error) {
	var b []byte
	for pos < len(tail) {
		c := tail[pos]
		if c == '\\' && pos+1 < len(tail) && tail[pos+1] == sep {
			if pos+2 >= len(tail) {
				b = append(b, sep)
				return string(b), pos + 2, false, true, nil
			}
			b = append(b, sep)
			pos += 2
			continue
		}
		if c == sep {
			return string(b), pos + 1, true, false, nil
		}
		b = append(b, c)
		pos++
	}
	return string(b), pos, false, false, nil
}
