package model

import (
	"errors"
	"image"
	"strings"
	"time"
)

var (
	// ErrUnknownService 服务类型不在可选列表中
	ErrUnknownService = errors.New("unknown service")
	// ErrUnknownTone 语气不在可选列表中
	ErrUnknownTone = errors.New("unknown tone")
)

// Service 诊所服务类型
type Service string

const (
	ServiceChiropractic Service = "Chiropractic wellness"
	ServiceWeightLoss   Service = "Medical weight loss"
	ServiceIVTherapy    Service = "IV therapy / hydration"
	ServiceRegenerative Service = "Regenerative wellness (educational)"
	ServiceGeneralTip   Service = "General wellness tip"
)

// Tone 文案语气
type Tone string

const (
	ToneFriendly         Tone = "Friendly"
	ToneWarmProfessional Tone = "Warm professional"
	ToneEducational      Tone = "Educational"
)

// GenerationRequest 一次表单提交
type GenerationRequest struct {
	Service Service `json:"service"`
	Tone    Tone    `json:"tone"`
	Angle   string  `json:"angle"`
	CTA     string  `json:"cta"`
}

// CopyResult 文案生成结果
type CopyResult struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"` // 不带 #，全部小写
}

// HashtagLine 返回带 # 前缀、空格拼接的标签行
func (c CopyResult) HashtagLine() string {
	tags := make([]string, 0, len(c.Hashtags))
	for _, h := range c.Hashtags {
		tags = append(tags, "#"+h)
	}
	return strings.Join(tags, " ")
}

// PostText 返回可直接粘贴的正文：文案 + 空行 + 标签
func (c CopyResult) PostText() string {
	return c.Caption + "\n\n" + c.HashtagLine()
}

// ImageResult 图片生成结果
type ImageResult struct {
	Image  image.Image
	Prompt string // 发送给图片模型的完整提示词
}

// ComplianceReport 合规扫描结果，Flags 按风险词表顺序排列
type ComplianceReport struct {
	Flags []string `json:"flags"`
}

// Passed 没有命中任何风险词
func (r ComplianceReport) Passed() bool {
	return len(r.Flags) == 0
}

// Banner 返回展示给用户的提示语
func (r ComplianceReport) Banner() string {
	if r.Passed() {
		return "Brand-safety check passed (heuristic). Please still review before posting."
	}
	return "Review needed: potential risk phrases detected → " + strings.Join(r.Flags, ", ")
}

// Post 一次完整生成的产物
type Post struct {
	ID         string
	Request    GenerationRequest
	Copy       CopyResult
	Image      ImageResult
	Compliance ComplianceReport
	ImagePath  string // 本地 PNG 路径
	CreatedAt  time.Time
}

// PostSummary 历史记录摘要
type PostSummary struct {
	ID        string
	Service   string
	Tone      string
	Caption   string
	Hashtags  []string
	Flags     []string
	ImagePath string
	CreatedAt string
}
