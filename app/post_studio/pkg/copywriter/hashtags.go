package copywriter

import (
	"slices"
	"strings"
	"unicode"
)

// HashtagCount 每条帖子固定的标签数量
const HashtagCount = 10

// NormalizeHashtags 清洗标签：去空白、转小写、去掉 #、去空、去重，
// 再按顺序用本地标签补足，最后截断到 HashtagCount 个
func NormalizeHashtags(tags []string, localTags []string) []string {
	out := make([]string, 0, HashtagCount)
	for _, h := range tags {
		h = cleanTag(h)
		if h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}

	for _, h := range localTags {
		if len(out) >= HashtagCount {
			break
		}
		h = cleanTag(h)
		if h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}

	if len(out) > HashtagCount {
		out = out[:HashtagCount]
	}
	return out
}

func cleanTag(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "#", "")
	// 标签内部不允许空白
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, h)
}
