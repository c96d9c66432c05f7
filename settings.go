package decorify

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/riverfjs/decorify-go/internal/types"
)

// Persistence 宿主持久化接口
//
// Load 返回上次保存的 settings JSON；尚无持久化数据时返回空。
// Save 写入完整的 settings JSON。两者都由宿主实现。
type Persistence interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store 是进程级的规则存储
//
// 启动时把持久化数据浅合并到内置默认值上：持久化文档中存在的顶层键
// 原样生效（空的规则列表也算存在，不会被默认规则顶掉），缺失的键保留
// 默认值。所有变更操作先改内存、再持久化、最后通知观察者，宿主借此
// 触发所有打开视图的整体重装饰。
//
// 宿主在单线程事件循环上串行访问 Store，因此不加锁。
type Store struct {
	persist   Persistence
	raw       []byte
	settings  Settings
	observers []func()
}

// NewStore 创建规则存储并加载持久化数据
//
// persist 可以为 nil，此时存储只存在于内存中。加载失败按无数据处理，
// 绝不致命。
func NewStore(persist Persistence) *Store {
	s := &Store{persist: persist}
	s.load()
	return s
}

// load merges persisted JSON over the built-in defaults.
func (s *Store) load() {
	s.settings = Settings{
		MarkerSide: DefaultConfig().MarkerSide,
		Rules:      DefaultRules(),
	}

	if s.persist == nil {
		return
	}

	data, err := s.persist.Load()
	if err != nil {
		Logger.Printf("load settings: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}
	s.raw = data

	if side := gjson.GetBytes(data, "markerSide"); side.Exists() {
		s.settings.MarkerSide = types.ParseSide(side.String()).String()
	}

	// An explicitly persisted rule list wins verbatim, even when empty:
	// a user who deleted every default rule must not get them back.
	if rules := gjson.GetBytes(data, "rules"); rules.Exists() {
		loaded := make([]Rule, 0)
		rules.ForEach(func(_, item gjson.Result) bool {
			loaded = append(loaded, Rule{
				Pattern: item.Get("pattern").String(),
				Marker:  item.Get("marker").String(),
				Enabled: item.Get("enabled").Bool(),
			})
			return true
		})
		s.settings.Rules = loaded
	}
}

// Rules returns a copy of the current ordered rule list.
func (s *Store) Rules() []Rule {
	rules := make([]Rule, len(s.settings.Rules))
	copy(rules, s.settings.Rules)
	return rules
}

// MarkerSide returns the current marker placement policy.
func (s *Store) MarkerSide() Side {
	return types.ParseSide(s.settings.MarkerSide)
}

// OnChange registers an observer fired after every successful mutation.
// Hosts use it to redecorate all open views.
func (s *Store) OnChange(fn func()) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// AddRuleFront 在列表最前插入一条规则（最高优先级）
func (s *Store) AddRuleFront(rule Rule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	s.settings.Rules = append([]Rule{rule}, s.settings.Rules...)
	return s.persistAndNotify()
}

// UpdateRule 原地修改 index 处的规则
func (s *Store) UpdateRule(index int, rule Rule) error {
	if index < 0 || index >= len(s.settings.Rules) {
		return ErrRuleIndex
	}
	if err := validateRule(rule); err != nil {
		return err
	}
	s.settings.Rules[index] = rule
	return s.persistAndNotify()
}

// DeleteRule 删除 index 处的规则
func (s *Store) DeleteRule(index int) error {
	if index < 0 || index >= len(s.settings.Rules) {
		return ErrRuleIndex
	}
	s.settings.Rules = append(s.settings.Rules[:index], s.settings.Rules[index+1:]...)
	return s.persistAndNotify()
}

// ResetRules 恢复内置默认规则
func (s *Store) ResetRules() error {
	s.settings.Rules = DefaultRules()
	return s.persistAndNotify()
}

// SetMarkerSide 设置 marker 插入方向
func (s *Store) SetMarkerSide(side Side) error {
	s.settings.MarkerSide = side.String()
	return s.persistAndNotify()
}

// validateRule rejects rules that could never produce a decoration.
func validateRule(rule Rule) error {
	if strings.TrimSpace(rule.Pattern) == "" {
		return ErrEmptyPattern
	}
	if strings.TrimSpace(rule.Marker) == "" {
		return ErrEmptyMarker
	}
	return nil
}

// persistAndNotify saves the current settings and fires observers.
// Observers fire even when saving fails: the in-memory state did change
// and open views must reflect it.
func (s *Store) persistAndNotify() error {
	err := s.save()
	for _, fn := range s.observers {
		fn()
	}
	return err
}

// save writes settings back through the host persistence. Foreign top-level
// keys in the loaded document are preserved: only this package's keys are
// edited in place.
func (s *Store) save() error {
	if s.persist == nil {
		return nil
	}

	raw := s.raw
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	raw, err := sjson.SetBytes(raw, "markerSide", s.settings.MarkerSide)
	if err == nil {
		raw, err = sjson.SetBytes(raw, "rules", s.settings.Rules)
	}
	if err != nil {
		Logger.Printf("encode settings: %v", err)
		return err
	}

	if err := s.persist.Save(raw); err != nil {
		Logger.Printf("save settings: %v", err)
		return err
	}

	s.raw = raw
	return nil
}
