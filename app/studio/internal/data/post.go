package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
	"github.com/iWorld-y/post_studio/app/studio/internal/biz"
)

type postRepo struct {
	data *Data
	log  *log.Helper
}

// NewPostRepo 创建生成历史仓库
func NewPostRepo(data *Data, logger log.Logger) biz.PostRepo {
	return &postRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *postRepo) ListPosts(ctx context.Context, page, pageSize int) ([]dm.PostSummary, int, error) {
	if r.data.store == nil {
		return []dm.PostSummary{}, 0, nil
	}

	posts, total, err := r.data.store.ListPosts(ctx, page, pageSize)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list posts: %v", err)
		return nil, 0, err
	}
	return posts, total, nil
}
