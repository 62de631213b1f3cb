package copywriter

import (
	"encoding/json"
	"strings"
)

// Reply 文案模型回复的解析结果，只有 StructuredReply 和 RawReply 两种
type Reply interface {
	isReply()
}

// StructuredReply 回复是符合约定的 JSON
type StructuredReply struct {
	Caption  string
	Hashtags []string
}

// RawReply 回复无法按 JSON 解析，整段文本作为文案
type RawReply struct {
	Text string
}

func (StructuredReply) isReply() {}
func (RawReply) isReply()        {}

type replyPayload struct {
	Caption  *string  `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// ParseReply 解析模型回复，失败时退回 RawReply，不返回错误
func ParseReply(content string) Reply {
	text := strings.TrimSpace(content)

	cleanContent := strings.TrimPrefix(text, "```json")
	cleanContent = strings.TrimPrefix(cleanContent, "```")
	cleanContent = strings.TrimSuffix(cleanContent, "```")
	cleanContent = strings.TrimSpace(cleanContent)

	// 只接受 JSON 对象
	if !strings.HasPrefix(cleanContent, "{") {
		return RawReply{Text: text}
	}

	var payload replyPayload
	if err := json.Unmarshal([]byte(cleanContent), &payload); err != nil {
		return RawReply{Text: text}
	}
	if payload.Caption == nil || strings.TrimSpace(*payload.Caption) == "" {
		return RawReply{Text: text}
	}

	return StructuredReply{
		Caption:  strings.TrimSpace(*payload.Caption),
		Hashtags: payload.Hashtags,
	}
}
