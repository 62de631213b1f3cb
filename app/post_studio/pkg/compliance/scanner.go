package compliance

import (
	"slices"
	"strings"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// Scanner 基于关键词的合规扫描器
//
// 只做大小写不敏感的子串匹配，没有词边界处理：
// "guarantee" 会同时命中 "guaranteed"，"100%" 也会命中 "100% cotton"。
type Scanner struct {
	phrases []string
}

// NewScanner 创建扫描器，phrases 应为小写
func NewScanner(phrases []string) *Scanner {
	return &Scanner{phrases: slices.Clone(phrases)}
}

// Scan 返回文本中命中的所有风险词，顺序与词表一致
func (s *Scanner) Scan(text string) model.ComplianceReport {
	t := strings.ToLower(text)
	flags := []string{}
	for _, p := range s.phrases {
		if strings.Contains(t, p) {
			flags = append(flags, p)
		}
	}
	return model.ComplianceReport{Flags: flags}
}
