// Package htmlpost decorates rendered HTML fragments in place.
//
// The live editing view rebuilds decorations from raw text, but reading
// views hand over finished HTML. This package walks such a fragment once:
// text nodes get their shortcode tokens replaced, and internal-link anchors
// get a marker span appended when their resolved path classifies.
package htmlpost

import (
	htmlesc "html"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/riverfjs/decorify-go/internal/classifier"
	"github.com/riverfjs/decorify-go/internal/scanner"
	"github.com/riverfjs/decorify-go/internal/shortcode"
	"github.com/riverfjs/decorify-go/internal/types"
)

// MarkerClass marks spans this package inserted. The class doubles as the
// idempotency guard: an anchor already adjacent to such a span is skipped.
const MarkerClass = "decorify-marker"

// skipElements are elements whose text content is never rewritten.
var skipElements = map[string]bool{
	"code":   true,
	"pre":    true,
	"script": true,
	"style":  true,
}

// Config carries everything one fragment pass needs.
type Config struct {
	Shortcodes *shortcode.Table
	Rules      []types.Rule
	Resolve    func(target string) (string, bool)
	Side       types.Side
	Logger     *log.Logger
}

// Process 对一个渲染完成的 HTML 片段做一次装饰处理，重复处理是幂等的
func Process(fragment string, cfg Config) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	body := doc.Find("body")
	if body.Length() > 0 {
		replaceShortcodes(body.Get(0), cfg.Shortcodes)
	}

	if cfg.Resolve != nil {
		doc.Find("a[data-target]").Each(func(_ int, sel *goquery.Selection) {
			appendMarker(sel, cfg)
		})
	}

	out, err := body.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}

// replaceShortcodes rewrites known shortcode tokens inside text nodes.
// Code-like elements and previously inserted marker spans are left alone.
func replaceShortcodes(n *html.Node, table *shortcode.Table) {
	if n.Type == html.ElementNode {
		if skipElements[n.Data] || hasClass(n, MarkerClass) {
			return
		}
	}

	if n.Type == html.TextNode {
		if replaced, changed := replaceTokens(n.Data, table); changed {
			n.Data = replaced
		}
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		replaceShortcodes(child, table)
	}
}

// replaceTokens 替换一段纯文本中的所有已知 shortcode token
func replaceTokens(text string, table *shortcode.Table) (string, bool) {
	matches := scanner.Shortcodes(text)
	if len(matches) == 0 {
		return text, false
	}

	var b strings.Builder
	last := 0
	changed := false
	for _, m := range matches {
		symbol, ok := table.Lookup(m.Token)
		if !ok {
			continue
		}
		b.WriteString(text[last:m.Start])
		b.WriteString(symbol)
		last = m.End
		changed = true
	}
	if !changed {
		return text, false
	}
	b.WriteString(text[last:])
	return b.String(), true
}

// appendMarker resolves one internal-link anchor and inserts its marker span.
func appendMarker(sel *goquery.Selection, cfg Config) {
	if hasMarkerSibling(sel, cfg.Side) {
		return
	}

	target, ok := sel.Attr("data-target")
	if !ok || target == "" {
		return
	}

	path, ok := cfg.Resolve(target)
	if !ok {
		return
	}

	rule, ok := classifier.Classify(path, cfg.Rules, cfg.Logger)
	if !ok {
		return
	}

	span := `<span class="` + MarkerClass + `">` + htmlesc.EscapeString(rule.Marker) + `</span>`
	if cfg.Side == types.SideBefore {
		sel.BeforeHtml(span)
	} else {
		sel.AfterHtml(span)
	}
}

// hasMarkerSibling reports whether the anchor already carries a marker on
// the configured side.
func hasMarkerSibling(sel *goquery.Selection, side types.Side) bool {
	if side == types.SideBefore {
		return sel.Prev().HasClass(MarkerClass)
	}
	return sel.Next().HasClass(MarkerClass)
}

// hasClass reports whether node carries class in its class attribute.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
