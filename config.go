package decorify

import (
	"sync"

	"github.com/riverfjs/decorify-go/internal/types"
)

// 导出类型别名
type Rule = types.Rule
type Settings = types.Settings
type LineSpan = types.LineSpan
type SelectionRange = types.SelectionRange
type Side = types.Side

// Marker sides.
const (
	SideAfter  = types.SideAfter
	SideBefore = types.SideBefore
)

var (
	defaultSettings     *Settings
	defaultSettingsOnce sync.Once
)

// DefaultConfig returns the built-in settings (singleton).
func DefaultConfig() *Settings {
	defaultSettingsOnce.Do(func() {
		defaultSettings = types.DefaultSettings()
	})
	return defaultSettings
}

// DefaultRules returns a fresh copy of the built-in rule list.
func DefaultRules() []Rule {
	src := DefaultConfig().Rules
	rules := make([]Rule, len(src))
	copy(rules, src)
	return rules
}
