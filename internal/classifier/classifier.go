// Package classifier matches resolved file paths against an ordered rule list.
//
// Rules are evaluated in list order and the first enabled matching rule wins,
// so ordering is semantically significant. A rule pattern is either a plain
// substring (case-insensitive containment) or, when wrapped in a leading and
// trailing "/", a regular expression body compiled case-insensitively.
package classifier

import (
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/riverfjs/decorify-go/internal/types"
)

// compiled caches regex rule bodies by pattern text. Classification runs on
// every decoration rebuild, so bodies compile once per pattern, not per call.
// Failed compilations are cached too: a malformed rule warns once and then
// never matches.
var (
	compiledMu sync.Mutex
	compiled   = map[string]*regexp.Regexp{}
	failed     = map[string]bool{}
)

// Classify 返回第一条匹配 path 的启用规则；没有规则匹配时 ok 为 false
//
// 子串规则双方都转为小写比较；正则规则以 (?i) 编译后匹配原始路径。
// 非法正则通过 logger 告警并视为永不匹配，继续尝试后续规则。
func Classify(path string, rules []types.Rule, logger *log.Logger) (types.Rule, bool) {
	lowered := strings.ToLower(path)

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}

		if body, ok := regexBody(rule.Pattern); ok {
			re := compile(rule.Pattern, body, logger)
			if re != nil && re.MatchString(path) {
				return rule, true
			}
			continue
		}

		if rule.Pattern != "" && strings.Contains(lowered, strings.ToLower(rule.Pattern)) {
			return rule, true
		}
	}

	return types.Rule{}, false
}

// regexBody reports whether pattern uses the /body/ regex form and returns
// the inner body.
func regexBody(pattern string) (string, bool) {
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		return pattern[1 : len(pattern)-1], true
	}
	return "", false
}

// compile returns the cached case-insensitive regexp for pattern, or nil when
// the body does not compile.
func compile(pattern, body string, logger *log.Logger) *regexp.Regexp {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if re, ok := compiled[pattern]; ok {
		return re
	}
	if failed[pattern] {
		return nil
	}

	re, err := regexp.Compile("(?i)" + body)
	if err != nil {
		failed[pattern] = true
		if logger != nil {
			logger.Printf("invalid rule pattern %q: %v", pattern, err)
		}
		return nil
	}

	compiled[pattern] = re
	return re
}
