package offsets

import (
	"unicode/utf8"
)

// Len returns the length of text measured in UTF-16 code units.
//
// Editor hosts measure decoration offsets in UTF-16 code units, not Go
// string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Table converts byte positions within one string to UTF-16 offsets.
type Table struct {
	offsets []int
}

// NewTable builds a cumulative UTF-16 offset table for each byte position
// of text. Table lookup is O(1) afterwards, so a scan pass builds one table
// per line and converts every match boundary through it.
func NewTable(text string) *Table {
	offsets := make([]int, len(text)+1)
	cum := 0
	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		for i := 0; i < size; i++ {
			offsets[pos+i] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		pos += size
	}
	offsets[len(text)] = cum
	return &Table{offsets: offsets}
}

// UTF16 returns the UTF-16 offset at byte position pos.
// Positions outside [0, len(text)] are clamped.
func (t *Table) UTF16(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(t.offsets) {
		return t.offsets[len(t.offsets)-1]
	}
	return t.offsets[pos]
}
