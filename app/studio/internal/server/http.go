package server

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/post_studio/app/studio/internal/conf"
	"github.com/iWorld-y/post_studio/app/studio/internal/service"
)

const (
	OperationCreatePost = "/studio.v1.Studio/CreatePost"
	OperationListPosts  = "/studio.v1.Studio/ListPosts"
)

// defaultTimeout 两次模型调用串行执行，kratos 默认的 1s 不够用
const defaultTimeout = 3 * time.Minute

func NewHTTPServer(c *conf.Server, s *service.StudioService, m *service.Metrics, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	timeout := defaultTimeout
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				timeout = d
			}
		}
	}
	opts = append(opts, http.Timeout(timeout))

	srv := http.NewServer(opts...)
	registerStudioHTTPServer(srv, s)

	// Pages
	srv.HandleFunc("/", s.Index)
	srv.HandleFunc("/generate", s.Generate)
	srv.HandlePrefix("/images/", s.ImageHandler("/images/", false))
	srv.HandlePrefix("/download/image/", s.ImageHandler("/download/image/", true))
	srv.Handle("/metrics", m.Handler())

	return srv
}

func registerStudioHTTPServer(srv *http.Server, s *service.StudioService) {
	r := srv.Route("/")
	r.POST("/api/v1/posts", createPostHandler(s))
	r.GET("/api/v1/posts", listPostsHandler(s))
}

func createPostHandler(s *service.StudioService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.CreatePostRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreatePost)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.CreatePost(ctx, req.(*service.CreatePostRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func listPostsHandler(s *service.StudioService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.ListPostsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationListPosts)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.ListPosts(ctx, req.(*service.ListPostsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
