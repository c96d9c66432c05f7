package scanner

import (
	"reflect"
	"testing"
)

func TestShortcodes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Match
	}{
		{
			name: "no tokens",
			line: "plain text",
			want: nil,
		},
		{
			name: "single token",
			line: "hi :smile: there",
			want: []Match{{Start: 3, End: 10, Token: ":smile:"}},
		},
		{
			name: "token with plus and digits",
			line: ":+1:",
			want: []Match{{Start: 0, End: 4, Token: ":+1:"}},
		},
		{
			name: "adjacent tokens do not double match",
			line: ":a::b:",
			want: []Match{
				{Start: 0, End: 3, Token: ":a:"},
				{Start: 3, End: 6, Token: ":b:"},
			},
		},
		{
			name: "lone colons ignored",
			line: "time: 10:30 :",
			want: nil,
		},
		{
			name: "colon pair around space ignored",
			line: ": smile :",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shortcodes(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Shortcodes(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []LinkMatch
	}{
		{
			name: "no links",
			line: "plain [not a link]",
			want: nil,
		},
		{
			name: "single link",
			line: "see [[notes/plan]] now",
			want: []LinkMatch{{Start: 4, End: 18, Target: "notes/plan", Display: "notes/plan"}},
		},
		{
			name: "link with display text",
			line: "[[notes/plan|the plan]]",
			want: []LinkMatch{{Start: 0, End: 23, Target: "notes/plan", Display: "the plan"}},
		},
		{
			name: "empty display falls back to target",
			line: "[[a|]]",
			want: []LinkMatch{{Start: 0, End: 6, Target: "a", Display: ""}},
		},
		{
			name: "two links on one line",
			line: "[[a]] and [[b]]",
			want: []LinkMatch{
				{Start: 0, End: 5, Target: "a", Display: "a"},
				{Start: 10, End: 15, Target: "b", Display: "b"},
			},
		},
		{
			name: "empty target ignored",
			line: "[[]]",
			want: nil,
		},
		{
			name: "unclosed link ignored",
			line: "[[dangling",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Links(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Links(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
