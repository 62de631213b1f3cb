package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// Generator 帖子生成引擎
type Generator interface {
	Run(ctx context.Context, req dm.GenerationRequest, opts engine.RunOptions) (*dm.Post, error)
	Catalog() *catalog.Catalog
	OutputDir() string
}

// PostRepo 生成历史仓库
type PostRepo interface {
	ListPosts(ctx context.Context, page, pageSize int) ([]dm.PostSummary, int, error)
}

// PostUseCase 帖子业务逻辑
type PostUseCase struct {
	gen  Generator
	repo PostRepo
	log  *log.Helper
}

// NewPostUseCase 创建帖子业务逻辑实例
func NewPostUseCase(gen Generator, repo PostRepo, logger log.Logger) *PostUseCase {
	return &PostUseCase{gen: gen, repo: repo, log: log.NewHelper(logger)}
}

// Generate 同步生成一条帖子
func (uc *PostUseCase) Generate(ctx context.Context, req dm.GenerationRequest) (*dm.Post, error) {
	post, err := uc.gen.Run(ctx, req, engine.RunOptions{
		ProgressCallback: func(status string, progress int) {
			uc.log.WithContext(ctx).Debugf("generation progress %d%%: %s", progress, status)
		},
	})
	if err != nil {
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("post %s generated, flags=%v", post.ID, post.Compliance.Flags)
	return post, nil
}

// List 分页列出生成历史
func (uc *PostUseCase) List(ctx context.Context, page, pageSize int) ([]dm.PostSummary, int, error) {
	return uc.repo.ListPosts(ctx, page, pageSize)
}

// Catalog 表单可选项
func (uc *PostUseCase) Catalog() *catalog.Catalog {
	return uc.gen.Catalog()
}

// OutputDir 图片输出目录
func (uc *PostUseCase) OutputDir() string {
	return uc.gen.OutputDir()
}
