// Package wikilink is a goldmark inline extension for [[target|display]] links.
//
// Reading views render wiki links as anchors carrying the raw target in a
// data-target attribute, so the HTML post-processor can resolve and mark them
// without re-parsing markdown.
package wikilink

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Node is an inline wiki link.
type Node struct {
	ast.BaseInline

	// Target is the resolvable portion before the optional pipe.
	Target []byte
	// Display is the text shown to the reader.
	Display []byte
}

// KindWikilink is the node kind of wiki links.
var KindWikilink = ast.NewNodeKind("Wikilink")

// Kind implements ast.Node.
func (n *Node) Kind() ast.NodeKind {
	return KindWikilink
}

// Dump implements ast.Node.
func (n *Node) Dump(source []byte, level int) {
	m := map[string]string{
		"Target":  string(n.Target),
		"Display": string(n.Display),
	}
	ast.DumpHelper(n, source, level, m, nil)
}

type wikilinkParser struct{}

// NewParser returns the [[...]] inline parser.
func NewParser() parser.InlineParser {
	return &wikilinkParser{}
}

func (p *wikilinkParser) Trigger() []byte {
	return []byte{'['}
}

// Parse 解析单行内的 [[target]] 或 [[target|display]]，不支持嵌套
func (p *wikilinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 5 || line[0] != '[' || line[1] != '[' {
		return nil
	}

	stop := bytes.Index(line, []byte("]]"))
	if stop < 3 {
		return nil
	}

	inner := line[2:stop]
	if bytes.ContainsAny(inner, "[]") {
		return nil
	}

	target := inner
	display := inner
	if pipe := bytes.IndexByte(inner, '|'); pipe >= 0 {
		target = inner[:pipe]
		display = inner[pipe+1:]
	}
	if len(target) == 0 {
		return nil
	}
	if len(display) == 0 {
		display = target
	}

	block.Advance(stop + 2)

	return &Node{
		Target:  target,
		Display: display,
	}
}

// HTMLRenderer renders wiki link nodes as internal-link anchors.
type HTMLRenderer struct{}

// NewHTMLRenderer returns the wiki link HTML renderer.
func NewHTMLRenderer() renderer.NodeRenderer {
	return &HTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindWikilink, r.render)
}

func (r *HTMLRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*Node)
	_, _ = w.WriteString(`<a href="#" class="internal-link" data-target="`)
	_, _ = w.Write(util.EscapeHTML(n.Target))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Display))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

type extender struct{}

// Extension registers the wiki link parser and renderer on a goldmark
// instance. The parser runs ahead of the standard link parser so [[...]]
// is not consumed as a half-open markdown link.
var Extension goldmark.Extender = &extender{}

func (e *extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(util.Prioritized(NewParser(), 199)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(NewHTMLRenderer(), 199)),
	)
}
