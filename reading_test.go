package decorify

import (
	"strings"
	"testing"
)

func readingOptions() []Option {
	return []Option{
		WithShortcodes(map[string]string{":+1:": "👍"}),
		WithRules([]Rule{{Pattern: "important", Marker: "🚀", Enabled: true}}),
		WithResolver(func(target string) (string, bool) {
			if target == "important/plan" {
				return "important/plan.md", true
			}
			return "", false
		}),
	}
}

func TestRender_FullPipeline(t *testing.T) {
	markdown := "Great job :+1: see [[important/plan|the plan]]"

	got, err := Render(markdown, readingOptions()...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got, "Great job 👍 see") {
		t.Errorf("Render() = %q, shortcode not replaced", got)
	}
	if !strings.Contains(got, `data-target="important/plan"`) {
		t.Errorf("Render() = %q, wikilink anchor missing", got)
	}
	if !strings.Contains(got, `>the plan</a>`) {
		t.Errorf("Render() = %q, display text missing", got)
	}
	if !strings.Contains(got, `<span class="`+MarkerClass+`">🚀</span>`) {
		t.Errorf("Render() = %q, marker missing", got)
	}
}

func TestRender_CodeBlocksUntouched(t *testing.T) {
	markdown := "```\n:+1:\n```\n\nand `:+1:` inline"

	got, err := Render(markdown, readingOptions()...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got, ":+1:") {
		t.Errorf("Render() = %q, token inside code replaced", got)
	}
	if strings.Contains(got, "👍") {
		t.Errorf("Render() = %q, code content decorated", got)
	}
}

func TestRender_UnresolvableLinkPlain(t *testing.T) {
	got, err := Render("see [[no/where]]", readingOptions()...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got, `data-target="no/where"`) {
		t.Errorf("Render() = %q, anchor missing", got)
	}
	if strings.Contains(got, MarkerClass) {
		t.Errorf("Render() = %q, unresolvable link got a marker", got)
	}
}

// TestProcessFragment_Idempotent 片段重复后处理是幂等的
func TestProcessFragment_Idempotent(t *testing.T) {
	markdown := "ok :+1: [[important/plan]]"

	first, err := Render(markdown, readingOptions()...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := ProcessFragment(first, readingOptions()...)
	if err != nil {
		t.Fatalf("ProcessFragment() error = %v", err)
	}
	if first != second {
		t.Errorf("ProcessFragment() not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}
