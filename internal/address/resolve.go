package address

import (
	"regexp"

	"github.com/gosed/ed/internal/engine/buffer"
)

// ResolveCtx is the editor state an address resolves against. SelA and
// SelB are the pre-command selection's two ends: "." resolves to SelA
// when it is the lone address or the left side of a range, and to SelB
// when it is the right side of a "," range (spec.md 4.1: "Current
// selection.0 for a lone index; for range components, .0 on the left
// side, .1 on the right").
type ResolveCtx struct {
	Buf  *buffer.Buffer
	SelA int
	SelB int
}

// ResolveInd maps a single parsed Ind to a concrete 1-indexed line
// number (which may be 0 or Buf.Len()+1, i.e. out of buffer range; the
// caller is responsible for range-checking against the operation that
// needs the result). anchor is the "current line" used by "." and as
// the wrap-around search origin for "/re/" and "?re?". Exported so
// destination-address commands (m/M/t/T) that legally accept 0 (a
// position before every line) can resolve without Resolve's
// VerifyLine check.
func ResolveInd(ctx ResolveCtx, ind Ind, anchor int) (int, error) {
	var base int
	switch ind.Kind {
	case KindCurrent:
		base = anchor
	case KindBufferLen:
		base = ctx.Buf.Len()
	case KindLiteral:
		base = ind.Literal
	case KindTag:
		n, err := findTag(ctx, ind.Tag)
		if err != nil {
			return 0, err
		}
		base = n
	case KindPattern:
		n, err := searchForward(ctx, ind.Pattern, anchor)
		if err != nil {
			return 0, err
		}
		base = n
	case KindRevPattern:
		n, err := searchBackward(ctx, ind.Pattern, anchor)
		if err != nil {
			return 0, err
		}
		base = n
	}
	return base + ind.Offset, nil
}

// findTag scans the buffer for the lowest-indexed line tagged c.
func findTag(ctx ResolveCtx, c rune) (int, error) {
	n := ctx.Buf.Len()
	for i := 1; i <= n; i++ {
		l, err := ctx.Buf.Get(i)
		if err != nil {
			return 0, err
		}
		if l.Tag() == c {
			return i, nil
		}
	}
	return 0, ErrTagNoMatch
}

// searchForward scans from anchor+1 to Len, then wraps 1..anchor,
// returning the first line whose text matches pattern.
func searchForward(ctx ResolveCtx, pattern string, anchor int) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, ErrRegexInvalid
	}
	n := ctx.Buf.Len()
	if n == 0 {
		return 0, ErrRegexNoMatch
	}
	for i := 1; i <= n; i++ {
		idx := anchor + i
		if idx > n {
			idx -= n
		}
		l, err := ctx.Buf.Get(idx)
		if err != nil {
			return 0, err
		}
		if re.MatchString(l.TrimmedText()) {
			return idx, nil
		}
	}
	return 0, ErrRegexNoMatch
}

// searchBackward is searchForward's mirror: scans from anchor-1 down
// to 1, then wraps Len..anchor+1.
func searchBackward(ctx ResolveCtx, pattern string, anchor int) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, ErrRegexInvalid
	}
	n := ctx.Buf.Len()
	if n == 0 {
		return 0, ErrRegexNoMatch
	}
	for i := 1; i <= n; i++ {
		idx := anchor - i
		if idx < 1 {
			idx += n
		}
		l, err := ctx.Buf.Get(idx)
		if err != nil {
			return 0, err
		}
		if re.MatchString(l.TrimmedText()) {
			return idx, nil
		}
	}
	return 0, ErrRegexNoMatch
}

// Resolve maps a parsed Selection to a concrete buffer.Selection.
//
// An absent side takes the separator's default: for ",", an absent A
// defaults to 1 and an absent B defaults to $; for ";", an absent A
// defaults to the current line (SelA) and an absent B defaults to $.
// A lone address (Sep == SepNone) resolves "." to SelA. Resolving the
// right side of a "," sees "." as SelB (spec.md 4.1); resolving the
// right side of a ";" sees "." as the already-resolved left address,
// matching the semicolon's "left side becomes current for the right"
// rule (spec.md 4.1/4.3).
func Resolve(ctx ResolveCtx, sel Selection) (buffer.Selection, error) {
	if sel.Sep == SepNone {
		a, err := ResolveInd(ctx, sel.A, ctx.SelA)
		if err != nil {
			return buffer.Selection{}, err
		}
		if err := ctx.Buf.VerifyLine(a); err != nil {
			return buffer.Selection{}, err
		}
		return buffer.Selection{A: a, B: a}, nil
	}

	var a int
	var err error
	if sel.HasA {
		a, err = ResolveInd(ctx, sel.A, ctx.SelA)
	} else if sel.Sep == SepSemicolon {
		a = ctx.SelA
	} else {
		a = 1
	}
	if err != nil {
		return buffer.Selection{}, err
	}

	rightAnchor := ctx.SelB
	if sel.Sep == SepSemicolon {
		rightAnchor = a
	}

	var b int
	if sel.HasB {
		b, err = ResolveInd(ctx, sel.B, rightAnchor)
	} else {
		b = ctx.Buf.Len()
	}
	if err != nil {
		return buffer.Selection{}, err
	}

	out := buffer.Selection{A: a, B: b}
	if err := ctx.Buf.VerifySelection(out); err != nil {
		return buffer.Selection{}, err
	}
	return out, nil
}
