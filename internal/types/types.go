package types

// Rule 路径分类规则
//
// Pattern 是普通子串（大小写不敏感包含匹配），或者用前后 `/` 包裹的
// 正则表达式体（大小写不敏感）。规则按列表顺序求值，先匹配者胜出。
type Rule struct {
	Pattern string `json:"pattern"`
	Marker  string `json:"marker"`
	Enabled bool   `json:"enabled"`
}

// Side 标记插入的方向
type Side int

const (
	// SideAfter places the marker immediately after the anchor position.
	SideAfter Side = iota
	// SideBefore places the marker immediately before the anchor position.
	SideBefore
)

// String returns the side name as persisted in settings.
func (s Side) String() string {
	if s == SideBefore {
		return "before"
	}
	return "after"
}

// ParseSide parses a persisted side name. Unknown values fall back to SideAfter.
func ParseSide(name string) Side {
	if name == "before" {
		return SideBefore
	}
	return SideAfter
}

// LineSpan 宿主文档中的一行，带绝对 UTF-16 偏移量
type LineSpan struct {
	StartOffset int
	EndOffset   int
	Text        string
}

// SelectionRange 当前选区，绝对 UTF-16 偏移量；光标是 From == To 的退化选区
type SelectionRange struct {
	From int
	To   int
}

// Settings 持久化的用户配置
type Settings struct {
	MarkerSide string `json:"markerSide"`
	Rules      []Rule `json:"rules"`
}

// DefaultSettings 返回内置默认配置
func DefaultSettings() *Settings {
	return &Settings{
		MarkerSide: SideAfter.String(),
		Rules: []Rule{
			{Pattern: "important", Marker: "🚀", Enabled: true},
			{Pattern: `/^daily\//`, Marker: "📅", Enabled: true},
			{Pattern: "archive", Marker: "📦", Enabled: false},
		},
	}
}
