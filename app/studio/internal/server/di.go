package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	"github.com/iWorld-y/post_studio/app/studio/internal/biz"
	"github.com/iWorld-y/post_studio/app/studio/internal/data"
	"github.com/iWorld-y/post_studio/app/studio/internal/service"
)

// ProviderSet 是 studio 服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewPostEngine,
	wire.Bind(new(biz.Generator), new(*engine.Engine)),

	// Data providers
	data.NewData,
	data.NewPostStore,
	data.NewPostRepo,

	// UseCase providers
	biz.NewPostUseCase,

	// Service providers
	service.NewMetrics,
	service.NewStudioService,
)
