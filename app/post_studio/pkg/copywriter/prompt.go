package copywriter

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// SystemInstruction 文案模型的系统提示词
const SystemInstruction = "You are a social media assistant for a medical clinic in Bentonville, Arkansas." +
	" Write Instagram captions in a friendly, professional, compliant tone." +
	" Avoid PHI, medical advice, guaranteed results, before/after claims," +
	" or unapproved indications. Prefer education, benefits, and lifestyle framing." +
	" Keep to <125 characters. End with a gentle CTA. Return compact JSON."

const (
	audienceLine = "Audience: adults in Northwest Arkansas."
	jsonContract = "Return JSON with keys: caption (string), hashtags (array of 10, lowercase, niche+local mix)."
)

// BuildUserMessage 组装用户消息，每行一个字段
func BuildUserMessage(req dm.GenerationRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Service: %s\n", req.Service)
	fmt.Fprintf(&sb, "Angle: %s\n", req.Angle)
	fmt.Fprintf(&sb, "CTA: %s\n", req.CTA)
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	sb.WriteString(audienceLine + "\n")
	sb.WriteString(jsonContract)
	return sb.String()
}

// BuildMessages 返回发送给文案模型的完整消息列表
func BuildMessages(req dm.GenerationRequest) []*schema.Message {
	return []*schema.Message{
		{Role: schema.System, Content: SystemInstruction},
		{Role: schema.User, Content: BuildUserMessage(req)},
	}
}
