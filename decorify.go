// Package decorify 为编辑器宿主计算非破坏性的内联文本装饰
//
// 这个包扫描文档文本中的两类模式——emoji shortcode（:name:）和
// wiki 链接（[[target]]）——并产出装饰指令（替换 widget 或插入
// marker），从不修改底层文档内容。
//
// 核心功能：
//   - 对每行文本做两趟独立的正则扫描
//   - 通过宿主注入的回调把链接目标解析为文件路径
//   - 按有序规则列表对解析后的路径分类（先匹配者胜出）
//   - 跳过光标/选区触碰的 span，边界也算触碰
//   - 阅读视图：goldmark 渲染 + HTML 片段后处理（幂等）
//
// 主要 API：
//   - Decorate() / Build(): 对文档快照重建装饰指令集
//   - Classify(): 路径规则分类
//   - Render() / ProcessFragment(): 阅读模式管道
//   - NewStore(): 规则存储，负责默认值合并、持久化与变更通知
//
// 示例：
//
//	resolver := func(target string) (string, bool) {
//	    return index.Lookup(target)
//	}
//	decorations := decorify.Decorate(lines, sel,
//	    decorify.WithShortcodes(map[string]string{":+1:": "👍"}),
//	    decorify.WithResolver(resolver),
//	)
//	for _, d := range decorations {
//	    switch d := d.(type) {
//	    case *decorify.ReplaceSpan:
//	        // 用 d.Symbol 替换渲染 [d.From, d.To)
//	    case *decorify.InsertMarker:
//	        // 在 d.Position 的 d.Side 侧插入 d.Symbol
//	    }
//	}
package decorify

// Decorate 对文档快照重建全部装饰指令
//
// 这是主要入口，等价于 Build()。宿主在每次文本变化、视口变化或
// 选区变化事件后同步调用；停留在旧快照上的结果直接丢弃即可。
//
// 参数：
//   - lines: 有序行序列，带绝对 UTF-16 偏移量
//   - sel: 当前选区
//   - opts: 构建选项
//
// 返回：
//   - []Decoration: 有序装饰指令集，由渲染层持有到下一次重建
func Decorate(lines []LineSpan, sel SelectionRange, opts ...Option) []Decoration {
	return Build(lines, sel, opts...)
}
