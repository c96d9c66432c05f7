// Package shortcode resolves :name: tokens to display symbols.
package shortcode

import (
	"github.com/enescakir/emoji"
)

// Table resolves shortcode tokens. A user-supplied overlay map takes
// precedence; tokens absent from the overlay fall back to the built-in
// emoji alias table. Tokens keep their colon delimiters as map keys.
type Table struct {
	overlay map[string]string
}

// New 创建一个 shortcode 查找表，overlay 可以为 nil
func New(overlay map[string]string) *Table {
	return &Table{overlay: overlay}
}

// Lookup 返回 token 对应的显示符号；未知 token 返回 ok=false
func (t *Table) Lookup(token string) (string, bool) {
	if t != nil && t.overlay != nil {
		if symbol, ok := t.overlay[token]; ok {
			return symbol, true
		}
	}

	// emoji.Parse replaces known aliases and leaves unknown input
	// untouched, which doubles as an existence check.
	if symbol := emoji.Parse(token); symbol != token {
		return symbol, true
	}

	return "", false
}
