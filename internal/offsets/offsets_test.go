package offsets

import (
	"testing"
)

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"two byte runes", "héllo", 5},
		{"three byte runes", "你好", 2},
		{"surrogate pair", "👍", 2},
		{"mixed", "a👍b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.text); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTable_UTF16(t *testing.T) {
	// "a👍b": byte layout a=0, 👍=1..4, b=5
	table := NewTable("a👍b")

	tests := []struct {
		pos  int
		want int
	}{
		{0, 0},
		{1, 1}, // start of 👍
		{5, 3}, // start of b, after the surrogate pair
		{6, 4}, // end of string
	}

	for _, tt := range tests {
		if got := table.UTF16(tt.pos); got != tt.want {
			t.Errorf("UTF16(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestTable_UTF16_MidRunePositions(t *testing.T) {
	// Positions inside a multi-byte rune report the rune's start offset.
	table := NewTable("👍")
	for pos := 0; pos < 4; pos++ {
		if got := table.UTF16(pos); got != 0 {
			t.Errorf("UTF16(%d) = %d, want 0", pos, got)
		}
	}
	if got := table.UTF16(4); got != 2 {
		t.Errorf("UTF16(4) = %d, want 2", got)
	}
}

func TestTable_UTF16_Clamped(t *testing.T) {
	table := NewTable("ab")
	if got := table.UTF16(-1); got != 0 {
		t.Errorf("UTF16(-1) = %d, want 0", got)
	}
	if got := table.UTF16(100); got != 2 {
		t.Errorf("UTF16(100) = %d, want 2", got)
	}
}
