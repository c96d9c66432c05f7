package scanner

import (
	"regexp"
)

var (
	// shortcodeRe 匹配 :name: 形式的 shortcode token
	// 全局从左到右、不重叠：一次匹配消费两侧冒号，相邻 token 不会串联
	shortcodeRe = regexp.MustCompile(`:[A-Za-z0-9_+-]+:`)

	// wikilinkRe 匹配 [[target]] 或 [[target|display]]，不支持嵌套
	wikilinkRe = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]*))?\]\]`)
)

// Match is one shortcode occurrence within a line.
// Start/End are byte offsets into the line text; Token keeps its delimiters.
type Match struct {
	Start int
	End   int
	Token string
}

// LinkMatch is one wikilink occurrence within a line. Start/End span the
// whole [[...]] construct including any |display suffix. Target is the
// resolvable portion before the optional pipe.
type LinkMatch struct {
	Start   int
	End     int
	Target  string
	Display string
}

// Shortcodes 扫描一行文本中所有 shortcode token
func Shortcodes(line string) []Match {
	locs := shortcodeRe.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Start: loc[0],
			End:   loc[1],
			Token: line[loc[0]:loc[1]],
		})
	}
	return matches
}

// Links 扫描一行文本中所有 wikilink
func Links(line string) []LinkMatch {
	locs := wikilinkRe.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]LinkMatch, 0, len(locs))
	for _, loc := range locs {
		m := LinkMatch{
			Start:  loc[0],
			End:    loc[1],
			Target: line[loc[2]:loc[3]],
		}
		if loc[4] >= 0 {
			m.Display = line[loc[4]:loc[5]]
		} else {
			m.Display = m.Target
		}
		matches = append(matches, m)
	}
	return matches
}
