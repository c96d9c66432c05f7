package decorify

import (
	"github.com/rivo/uniseg"
)

// SymbolWidth 计算符号在等宽渲染下占用的单元格数
//
// 替换 widget 和插入 marker 的宽度决定了宿主为装饰预留的空间。
// emoji 等宽字符按 2 个单元格计算。
//
// 参数：
//   - s: 要计算的符号
//
// 返回：
//   - int: 单元格数
func SymbolWidth(s string) int {
	return uniseg.StringWidth(s)
}

// GraphemeCount returns the number of user-perceived characters in s.
// Useful for validating that a marker renders as a single glyph.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
