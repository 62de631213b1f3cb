package imagegen

import (
	"context"
	"fmt"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/logger"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// Composer 图片生成器
type Composer struct {
	gen ImageGenerator
	cat *catalog.Catalog
	rnd Rand
}

// NewComposer 创建图片生成器
func NewComposer(gen ImageGenerator, cat *catalog.Catalog, rnd Rand) *Composer {
	return &Composer{gen: gen, cat: cat, rnd: rnd}
}

// Compose 根据服务、语气和文案生成一张图片。调用或解码失败直接返回错误
func (c *Composer) Compose(ctx context.Context, req dm.GenerationRequest, caption string) (*dm.ImageResult, error) {
	prompt := BuildPrompt(c.cat, req, caption, c.rnd)
	logger.Log.Debugf("图片提示词: %s", prompt.Text)

	b64, err := c.gen.GenerateImage(ctx, prompt.Text)
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	img, err := Decode(b64)
	if err != nil {
		return nil, err
	}

	return &dm.ImageResult{
		Image:  img,
		Prompt: prompt.Text,
	}, nil
}
