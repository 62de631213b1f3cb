package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/gg/gson"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/compliance"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/config"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/copywriter"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/export"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/imagegen"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/logger"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// PostStore 生成历史存储，可以为空
type PostStore interface {
	SavePost(ctx context.Context, post *dm.Post) error
}

// Engine 核心处理引擎：文案 -> 图片 -> 合规扫描 -> 导出
type Engine struct {
	cfg     *config.Config
	store   PostStore
	catalog *catalog.Catalog
	copy    *copywriter.Composer
	image   *imagegen.Composer
	scanner *compliance.Scanner
	limiter *rate.Limiter
	now     func() time.Time
}

// Deps 引擎依赖的外部模型
type Deps struct {
	Text  copywriter.TextGenerator
	Image imagegen.ImageGenerator
	Rand  imagegen.Rand
	Now   func() time.Time
}

// NewEngine 创建引擎实例，使用配置中的 OpenAI 兼容接口
func NewEngine(cfg *config.Config, store PostStore) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := context.Background()

	// 初始化 LLM
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	// 初始化图片模型
	imageClient := imagegen.NewOpenAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.Image.Model)

	return NewEngineWithDeps(cfg, store, Deps{
		Text:  chatModel,
		Image: imageClient,
		Rand:  imagegen.NewLockedRand(time.Now().UnixNano()),
	}), nil
}

// NewEngineWithDeps 使用给定的模型创建引擎
func NewEngineWithDeps(cfg *config.Config, store PostStore, deps Deps) *Engine {
	cat := catalog.Default()

	// 初始化限流器
	limit := rate.Inf
	if cfg.Concurrency.RPM > 0 {
		limit = rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	}
	burst := cfg.Concurrency.QPS
	if burst <= 0 {
		burst = 1
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		cfg:     cfg,
		store:   store,
		catalog: cat,
		copy:    copywriter.NewComposer(deps.Text, cat),
		image:   imagegen.NewComposer(deps.Image, cat, deps.Rand),
		scanner: compliance.NewScanner(cat.RiskPhrases()),
		limiter: rate.NewLimiter(limit, burst),
		now:     now,
	}
}

// Catalog 返回引擎使用的静态数据
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// OutputDir 生成文件的输出目录
func (e *Engine) OutputDir() string {
	return e.cfg.Output.Dir
}

// RunOptions 运行选项
type RunOptions struct {
	ProgressCallback func(status string, progress int)
}

// Run 执行一次生成：两次模型调用串行进行，任一失败则整次失败，不重试
func (e *Engine) Run(ctx context.Context, req dm.GenerationRequest, opts RunOptions) (*dm.Post, error) {
	progress := func(status string, p int) {
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(status, p)
		}
	}

	if err := e.catalog.Validate(req); err != nil {
		return nil, err
	}
	logger.Log.Infof("开始生成帖子: 服务 [%s]，语气 [%s]", req.Service, req.Tone)
	progress("starting", 0)

	// 1. 文案
	progress("drafting caption and hashtags", 10)
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	copyResult, err := e.copy.Compose(ctx, req)
	if err != nil {
		logger.Log.Errorf("文案生成失败: %v", err)
		return nil, err
	}
	logger.Log.Debugf("文案结果: %s", gson.ToString(copyResult))

	// 2. 图片
	progress("generating brand-safe image", 40)
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	imageResult, err := e.image.Compose(ctx, req, copyResult.Caption)
	if err != nil {
		logger.Log.Errorf("图片生成失败: %v", err)
		return nil, err
	}

	// 3. 合规扫描，仅作提示
	progress("compliance check", 80)
	report := e.scanner.Scan(copyResult.Caption)
	if !report.Passed() {
		logger.Log.Warnf("文案命中风险词: %v", report.Flags)
	}

	post := &dm.Post{
		ID:         uuid.NewString(),
		Request:    req,
		Copy:       *copyResult,
		Image:      *imageResult,
		Compliance: report,
		CreatedAt:  e.now(),
	}

	// 4. 导出图片
	path, err := export.SaveImage(e.cfg.Output.Dir, imageResult.Image, post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	post.ImagePath = path

	// 保存到数据库，失败只记录日志
	if e.store != nil {
		if err := e.store.SavePost(ctx, post); err != nil {
			logger.Log.Errorf("保存生成记录失败 [%s]: %v", post.ID, err)
		}
	}

	logger.Log.Infof("帖子 [%s] 生成完成，图片: %s", post.ID, path)
	progress("completed", 100)
	return post, nil
}
