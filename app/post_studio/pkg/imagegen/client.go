package imagegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ImageSize 固定的输出尺寸
const ImageSize = openai.CreateImageSize1024x1024

// ImageGenerator 图片模型，返回 base64 编码的图片
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient 基于 OpenAI Images API 的图片模型
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient 创建图片模型客户端
func NewOpenAIClient(baseURL, apiKey, model string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// GenerateImage 请求一张 1024x1024 图片
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := openai.ImageRequest{
		Prompt: prompt,
		Model:  c.model,
		Size:   ImageSize,
		N:      1,
	}
	// gpt-image 系列总是返回 b64，不接受 response_format
	if !strings.HasPrefix(c.model, "gpt-image") {
		req.ResponseFormat = openai.CreateImageResponseFormatB64JSON
	}

	resp, err := c.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", ErrEmptyImage
	}
	return resp.Data[0].B64JSON, nil
}
