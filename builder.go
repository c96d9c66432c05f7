package decorify

import (
	"github.com/riverfjs/decorify-go/internal/classifier"
	"github.com/riverfjs/decorify-go/internal/offsets"
	"github.com/riverfjs/decorify-go/internal/scanner"
	"github.com/riverfjs/decorify-go/internal/shortcode"
)

// Build 对一份文档快照重建全部装饰指令
//
// 每次文本、视口或选区变化时宿主都应以新的快照重新调用；输出整体替换
// 上一次的结果，不做增量 diff。Build 是纯函数：不做 I/O，不修改输入。
//
// 每行两趟独立扫描：
//  1. shortcode：:name: token 命中查找表时产出 ReplaceSpan
//  2. wikilink：[[target]] 经宿主解析、规则分类后产出 InsertMarker
//
// 被选区触碰（含边界）的 span 一律跳过。两类 span 不会重叠，结果为简单并集。
//
// 参数：
//   - lines: 有序行序列，带绝对 UTF-16 偏移量
//   - sel: 当前选区；光标是 From == To 的退化选区
//   - opts: 构建选项
//
// 返回：
//   - []Decoration: 有序装饰指令集
func Build(lines []LineSpan, sel SelectionRange, opts ...Option) []Decoration {
	options := applyOptions(opts...)
	table := shortcode.New(options.Shortcodes)

	result := make([]Decoration, 0)
	for _, line := range lines {
		buildLine(&result, line, sel, table, options)
	}
	return result
}

// buildLine 对单行执行两趟扫描并追加产出的指令
func buildLine(result *[]Decoration, line LineSpan, sel SelectionRange, table *shortcode.Table, options *BuildOptions) {
	var offTable *offsets.Table

	// Offset tables are only needed once a match exists on the line.
	abs := func(bytePos int) int {
		if offTable == nil {
			offTable = offsets.NewTable(line.Text)
		}
		return line.StartOffset + offTable.UTF16(bytePos)
	}

	for _, m := range scanner.Shortcodes(line.Text) {
		symbol, ok := table.Lookup(m.Token)
		if !ok {
			// Unknown token, not an error.
			continue
		}

		from := abs(m.Start)
		to := abs(m.End)
		if SelectionTouches(sel, from, to) {
			continue
		}

		*result = append(*result, &ReplaceSpan{
			From:   from,
			To:     to,
			Symbol: symbol,
		})
	}

	if options.Resolve == nil {
		return
	}

	for _, m := range scanner.Links(line.Text) {
		from := abs(m.Start)
		to := abs(m.End)
		if SelectionTouches(sel, from, to) {
			continue
		}

		path, ok := options.Resolve(m.Target)
		if !ok {
			// Unresolvable link, not an error.
			continue
		}

		rule, ok := classifier.Classify(path, options.Rules, Logger)
		if !ok {
			continue
		}

		// Markers only ever insert next to the link, the link's own
		// characters stay untouched.
		position := to
		if options.MarkerSide == SideBefore {
			position = from
		}

		*result = append(*result, &InsertMarker{
			Position: position,
			Symbol:   rule.Marker,
			Side:     options.MarkerSide,
		})
	}
}

// Classify 返回第一条匹配 path 的启用规则
//
// 规则按列表顺序求值，先匹配者胜出；没有匹配时 ok 为 false。
// 非法正则规则告警后视为永不匹配，不会中断分类。
func Classify(path string, rules []Rule) (Rule, bool) {
	return classifier.Classify(path, rules, Logger)
}
