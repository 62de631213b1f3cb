package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	psLogger "github.com/iWorld-y/post_studio/app/post_studio/pkg/logger"
	"github.com/iWorld-y/post_studio/app/studio/internal/conf"
)

// NewPostEngine 初始化帖子生成引擎，缺少 OPENAI_API_KEY 时启动失败
func NewPostEngine(c *conf.Studio, store engine.PostStore, logger log.Logger) (*engine.Engine, error) {
	cfg := c.EngineConfig()
	if err := cfg.Validate(); err != nil {
		log.NewHelper(logger).Error(err.Error())
		return nil, err
	}

	// 初始化引擎日志
	if err := psLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init post_studio logger: %v", err)
		_ = psLogger.InitLogger("info", "") // 降级处理
	}

	eng, err := engine.NewEngine(cfg, store)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine: %v", err)
		return nil, err
	}
	return eng, nil
}
