package decorify

import (
	"github.com/riverfjs/decorify-go/internal/offsets"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Editor hosts measure document offsets and decoration spans in UTF-16
// code units, not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 UTF-16 code units (a surrogate pair);
// all others take 1.
func UTF16Len(text string) int {
	return offsets.Len(text)
}

// SelectionTouches reports whether the selection occupies any position of
// the span [from, to], boundaries included. A collapsed cursor sitting
// exactly on a span edge still counts as touching, so a decoration never
// obstructs text the user is editing or about to type next to.
func SelectionTouches(sel SelectionRange, from, to int) bool {
	if sel.From >= from && sel.From <= to {
		return true
	}
	if sel.To >= from && sel.To <= to {
		return true
	}
	return sel.From <= from && sel.To >= to
}
