package copywriter

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gson"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/logger"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// TextGenerator 文案模型，eino 的 ChatModel 满足该接口
type TextGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Composer 文案生成器
type Composer struct {
	gen TextGenerator
	cat *catalog.Catalog
}

// NewComposer 创建文案生成器
func NewComposer(gen TextGenerator, cat *catalog.Catalog) *Composer {
	return &Composer{gen: gen, cat: cat}
}

// Compose 调用一次文案模型，生成文案和 10 个标签。模型调用失败直接返回错误，不重试
func (c *Composer) Compose(ctx context.Context, req dm.GenerationRequest) (*dm.CopyResult, error) {
	messages := BuildMessages(req)

	resp, err := c.gen.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("generate caption: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("generate caption: empty response")
	}
	logger.Log.Debugf("文案模型返回: %s", gson.ToString(resp))

	reply := ParseReply(resp.Content)
	if _, ok := reply.(RawReply); ok {
		logger.Log.Warnf("文案模型未返回有效 JSON，使用原文作为文案")
	}
	return Resolve(reply, c.cat.LocalTags()), nil
}

// Resolve 把解析结果转换为最终文案，标签总是重新清洗
func Resolve(reply Reply, localTags []string) *dm.CopyResult {
	var caption string
	var tags []string

	switch r := reply.(type) {
	case StructuredReply:
		caption = r.Caption
		tags = r.Hashtags
	case RawReply:
		caption = r.Text
		tags = localTags
	}

	return &dm.CopyResult{
		Caption:  caption,
		Hashtags: NormalizeHashtags(tags, localTags),
	}
}
