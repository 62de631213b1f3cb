package service

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"html/template"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/export"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
	"github.com/iWorld-y/post_studio/app/studio/internal/biz"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// 表单默认值
const (
	defaultService = dm.ServiceWeightLoss
	defaultTone    = dm.ToneWarmProfessional
	defaultAngle   = "Seasonal wellness tip"
	defaultCTA     = "Book a consult this week"
)

type CreatePostRequest struct {
	Service string `json:"service"`
	Tone    string `json:"tone"`
	Angle   string `json:"angle"`
	CTA     string `json:"cta"`
}

type CreatePostReply struct {
	Id          string   `json:"id"`
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	Flags       []string `json:"flags"`
	Passed      bool     `json:"passed"`
	Banner      string   `json:"banner"`
	ImageFile   string   `json:"image_file"`
	CaptionText string   `json:"caption_text"`
}

type ListPostsRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

type PostSummary struct {
	Id        string   `json:"id"`
	Service   string   `json:"service"`
	Tone      string   `json:"tone"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	Flags     []string `json:"flags"`
	ImageFile string   `json:"image_file"`
	CreatedAt string   `json:"created_at"`
}

type ListPostsReply struct {
	Posts []*PostSummary `json:"posts"`
	Total int32          `json:"total"`
}

type StudioService struct {
	uc      *biz.PostUseCase
	metrics *Metrics
	log     *log.Helper
}

func NewStudioService(uc *biz.PostUseCase, metrics *Metrics, logger log.Logger) *StudioService {
	return &StudioService{
		uc:      uc,
		metrics: metrics,
		log:     log.NewHelper(logger),
	}
}

// CreatePost JSON 接口：生成一条帖子
func (s *StudioService) CreatePost(ctx context.Context, req *CreatePostRequest) (*CreatePostReply, error) {
	post, err := s.generate(ctx, dm.GenerationRequest{
		Service: dm.Service(req.Service),
		Tone:    dm.Tone(req.Tone),
		Angle:   req.Angle,
		CTA:     req.CTA,
	})
	if err != nil {
		return nil, err
	}

	return &CreatePostReply{
		Id:          post.ID,
		Caption:     post.Copy.Caption,
		Hashtags:    post.Copy.Hashtags,
		Flags:       post.Compliance.Flags,
		Passed:      post.Compliance.Passed(),
		Banner:      post.Compliance.Banner(),
		ImageFile:   filepath.Base(post.ImagePath),
		CaptionText: export.CaptionText(post.Copy),
	}, nil
}

// ListPosts JSON 接口：分页查询生成历史
func (s *StudioService) ListPosts(ctx context.Context, req *ListPostsRequest) (*ListPostsReply, error) {
	page := int(req.Page)
	if page < 1 {
		page = 1
	}
	pageSize := int(req.PageSize)
	if pageSize < 1 {
		pageSize = 10
	}

	posts, total, err := s.uc.List(ctx, page, pageSize)
	if err != nil {
		return nil, errors.InternalServer("LIST_FAILED", "failed to list posts")
	}

	list := make([]*PostSummary, 0, len(posts))
	for _, p := range posts {
		list = append(list, &PostSummary{
			Id:        p.ID,
			Service:   p.Service,
			Tone:      p.Tone,
			Caption:   p.Caption,
			Hashtags:  p.Hashtags,
			Flags:     p.Flags,
			ImageFile: filepath.Base(p.ImagePath),
			CreatedAt: p.CreatedAt,
		})
	}

	return &ListPostsReply{Posts: list, Total: int32(total)}, nil
}

// generate 执行生成并把错误映射为 kratos 错误
func (s *StudioService) generate(ctx context.Context, req dm.GenerationRequest) (*dm.Post, error) {
	post, err := s.uc.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, dm.ErrUnknownService) || errors.Is(err, dm.ErrUnknownTone) {
			s.metrics.ObserveGeneration(OutcomeInvalid, false)
			return nil, errors.BadRequest("INVALID_REQUEST", err.Error())
		}
		s.metrics.ObserveGeneration(OutcomeFailed, false)
		s.log.WithContext(ctx).Errorf("generation failed: %v", err)
		return nil, errors.New(nethttp.StatusBadGateway, "GENERATION_FAILED", err.Error())
	}
	s.metrics.ObserveGeneration(OutcomeSuccess, !post.Compliance.Passed())
	return post, nil
}

type option struct {
	Value    string
	Selected bool
}

type formPage struct {
	Services []option
	Tones    []option
	Angle    string
	CTA      string
	Error    string
}

type resultPage struct {
	ImageName  string
	Caption    string
	Hashtags   string
	Banner     string
	Passed     bool
	CaptionURI template.URL
}

func (s *StudioService) form(req dm.GenerationRequest, errMsg string) formPage {
	cat := s.uc.Catalog()
	page := formPage{Angle: req.Angle, CTA: req.CTA, Error: errMsg}
	for _, svc := range cat.Services() {
		page.Services = append(page.Services, option{Value: string(svc), Selected: svc == req.Service})
	}
	for _, t := range cat.Tones() {
		page.Tones = append(page.Tones, option{Value: string(t), Selected: t == req.Tone})
	}
	return page
}

// Index 表单页
func (s *StudioService) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		nethttp.NotFound(w, r)
		return
	}
	s.render(w, nethttp.StatusOK, "index", s.form(dm.GenerationRequest{
		Service: defaultService,
		Tone:    defaultTone,
		Angle:   defaultAngle,
		CTA:     defaultCTA,
	}, ""))
}

// Generate 表单提交，生成后渲染结果页
func (s *StudioService) Generate(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		nethttp.Error(w, "bad form", nethttp.StatusBadRequest)
		return
	}

	req := dm.GenerationRequest{
		Service: dm.Service(r.PostFormValue("service")),
		Tone:    dm.Tone(r.PostFormValue("tone")),
		Angle:   r.PostFormValue("angle"),
		CTA:     r.PostFormValue("cta"),
	}

	post, err := s.generate(r.Context(), req)
	if err != nil {
		se := errors.FromError(err)
		s.render(w, int(se.Code), "index", s.form(req, se.Message))
		return
	}

	text := export.CaptionText(post.Copy)
	s.render(w, nethttp.StatusOK, "result", resultPage{
		ImageName:  filepath.Base(post.ImagePath),
		Caption:    post.Copy.Caption,
		Hashtags:   post.Copy.HashtagLine(),
		Banner:     post.Compliance.Banner(),
		Passed:     post.Compliance.Passed(),
		CaptionURI: template.URL("data:text/plain;charset=utf-8;base64," + base64.StdEncoding.EncodeToString([]byte(text))),
	})
}

// ImageHandler 返回输出目录中的 PNG，attachment 为 true 时作为下载
func (s *StudioService) ImageHandler(prefix string, attachment bool) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if !export.ValidImageName(name) {
			nethttp.NotFound(w, r)
			return
		}

		f, err := os.Open(filepath.Join(s.uc.OutputDir(), name))
		if err != nil {
			nethttp.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			nethttp.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if attachment {
			w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		}
		nethttp.ServeContent(w, r, name, info.ModTime(), f)
	}
}

func (s *StudioService) render(w nethttp.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Errorf("render %s: %v", name, err)
		nethttp.Error(w, "internal error", nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
