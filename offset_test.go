package decorify

import (
	"testing"
)

// TestUTF16Len 测试 UTF-16 code unit 计数
func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"bmp cjk", "你好", 2},
		{"surrogate pair emoji", "👍", 2},
		{"mixed", "ok 👍 done", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTF16Len(tt.text); got != tt.want {
				t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// TestSelectionTouches 测试边界全包含的触碰判定
func TestSelectionTouches(t *testing.T) {
	tests := []struct {
		name string
		sel  SelectionRange
		from int
		to   int
		want bool
	}{
		{"collapsed inside", SelectionRange{From: 5, To: 5}, 3, 8, true},
		{"collapsed at from", SelectionRange{From: 3, To: 3}, 3, 8, true},
		{"collapsed at to", SelectionRange{From: 8, To: 8}, 3, 8, true},
		{"collapsed before", SelectionRange{From: 2, To: 2}, 3, 8, false},
		{"collapsed after", SelectionRange{From: 9, To: 9}, 3, 8, false},
		{"range overlapping start", SelectionRange{From: 1, To: 4}, 3, 8, true},
		{"range overlapping end", SelectionRange{From: 7, To: 12}, 3, 8, true},
		{"range containing span", SelectionRange{From: 0, To: 20}, 3, 8, true},
		{"range inside span", SelectionRange{From: 4, To: 6}, 3, 8, true},
		{"range ending exactly at from", SelectionRange{From: 0, To: 3}, 3, 8, true},
		{"range starting exactly at to", SelectionRange{From: 8, To: 12}, 3, 8, true},
		{"range fully before", SelectionRange{From: 0, To: 2}, 3, 8, false},
		{"range fully after", SelectionRange{From: 9, To: 12}, 3, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectionTouches(tt.sel, tt.from, tt.to); got != tt.want {
				t.Errorf("SelectionTouches(%+v, %d, %d) = %v, want %v",
					tt.sel, tt.from, tt.to, got, tt.want)
			}
		})
	}
}
