package data

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/storage"
	"github.com/iWorld-y/post_studio/app/studio/internal/conf"
)

// Data 数据层资源，未配置数据库时 store 为空
type Data struct {
	store *storage.Storage
}

// NewData 按配置连接生成历史数据库
func NewData(c *conf.Studio, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	cfg := c.EngineConfig()

	if cfg.DB.Host == "" {
		helper.Info("database not configured, generation history disabled")
		return &Data{}, func() {}, nil
	}

	store, err := storage.NewStorage(cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		store.Close()
	}
	return &Data{store: store}, cleanup, nil
}

// NewPostStore 引擎使用的历史存储，未配置数据库时返回 nil
func NewPostStore(d *Data) engine.PostStore {
	if d.store == nil {
		return nil
	}
	return d.store
}
