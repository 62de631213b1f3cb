package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/export"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
	"github.com/iWorld-y/post_studio/app/studio/internal/biz"
)

type fakeGenerator struct {
	dir     string
	caption string
	err     error
}

func (f *fakeGenerator) Run(_ context.Context, req dm.GenerationRequest, _ engine.RunOptions) (*dm.Post, error) {
	if err := catalog.Default().Validate(req); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	path, err := export.SaveImage(f.dir, image.NewNRGBA(image.Rect(0, 0, 4, 4)), time.Date(2026, 3, 1, 9, 30, 5, 0, time.Local))
	if err != nil {
		return nil, err
	}
	report := dm.ComplianceReport{Flags: []string{}}
	if strings.Contains(strings.ToLower(f.caption), "miracle") {
		report.Flags = []string{"miracle"}
	}
	return &dm.Post{
		ID:         "post-1",
		Request:    req,
		Copy:       dm.CopyResult{Caption: f.caption, Hashtags: []string{"nwa", "selfcare"}},
		Compliance: report,
		ImagePath:  path,
	}, nil
}

func (f *fakeGenerator) Catalog() *catalog.Catalog { return catalog.Default() }

func (f *fakeGenerator) OutputDir() string { return f.dir }

type emptyRepo struct{}

func (emptyRepo) ListPosts(context.Context, int, int) ([]dm.PostSummary, int, error) {
	return []dm.PostSummary{{ID: "post-1", ImagePath: "output/post_image_20260301_093005.png"}}, 1, nil
}

func newTestService(t *testing.T, gen *fakeGenerator) *StudioService {
	t.Helper()
	if gen.dir == "" {
		gen.dir = t.TempDir()
	}
	uc := biz.NewPostUseCase(gen, emptyRepo{}, log.DefaultLogger)
	return NewStudioService(uc, NewMetrics(), log.DefaultLogger)
}

func TestIndex_RendersDefaults(t *testing.T) {
	s := newTestService(t, &fakeGenerator{})

	rec := httptest.NewRecorder()
	s.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="Medical weight loss" selected>`)
	assert.Contains(t, body, `<option value="Warm professional" selected>`)
	assert.Contains(t, body, `value="Seasonal wellness tip"`)
	assert.Contains(t, body, `value="Book a consult this week"`)
	assert.Contains(t, body, "Notes &amp; next steps")
}

func TestIndex_UnknownPath(t *testing.T) {
	s := newTestService(t, &fakeGenerator{})

	rec := httptest.NewRecorder()
	s.Index(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestGenerate_ResultPage(t *testing.T) {
	s := newTestService(t, &fakeGenerator{caption: "A miracle glow awaits."})

	rec := httptest.NewRecorder()
	s.Generate(rec, postForm(url.Values{
		"service": {"IV therapy / hydration"},
		"tone":    {"Friendly"},
		"angle":   {"Summer"},
		"cta":     {"Book now"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "A miracle glow awaits.")
	assert.Contains(t, body, "#nwa #selfcare")
	assert.Contains(t, body, "Review needed: potential risk phrases detected → miracle")
	assert.Contains(t, body, "/download/image/post_image_20260301_093005.png")
	assert.Contains(t, body, "data:text/plain;charset=utf-8;base64,")
}

func TestGenerate_InvalidService(t *testing.T) {
	s := newTestService(t, &fakeGenerator{})

	rec := httptest.NewRecorder()
	s.Generate(rec, postForm(url.Values{"service": {"Dental"}, "tone": {"Friendly"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown service")
}

func TestGenerate_CollaboratorFailure(t *testing.T) {
	s := newTestService(t, &fakeGenerator{err: errors.New("image model unavailable")})

	rec := httptest.NewRecorder()
	s.Generate(rec, postForm(url.Values{"service": {"Medical weight loss"}, "tone": {"Friendly"}}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "image model unavailable")
}

func TestCreatePost(t *testing.T) {
	s := newTestService(t, &fakeGenerator{caption: "Hydrate well."})

	reply, err := s.CreatePost(context.Background(), &CreatePostRequest{
		Service: "IV therapy / hydration",
		Tone:    "Educational",
	})
	require.NoError(t, err)

	assert.Equal(t, "post-1", reply.Id)
	assert.True(t, reply.Passed)
	assert.Equal(t, "post_image_20260301_093005.png", reply.ImageFile)
	assert.Equal(t, "Hydrate well.\n\n#nwa #selfcare", reply.CaptionText)
}

func TestCreatePost_InvalidTone(t *testing.T) {
	s := newTestService(t, &fakeGenerator{})

	_, err := s.CreatePost(context.Background(), &CreatePostRequest{Service: "Medical weight loss", Tone: "Grumpy"})
	require.Error(t, err)
	assert.Equal(t, int32(http.StatusBadRequest), kerrors.FromError(err).Code)
}

func TestListPosts(t *testing.T) {
	s := newTestService(t, &fakeGenerator{})

	reply, err := s.ListPosts(context.Background(), &ListPostsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), reply.Total)
	assert.Equal(t, "post_image_20260301_093005.png", reply.Posts[0].ImageFile)
}

func TestImageHandler(t *testing.T) {
	gen := &fakeGenerator{caption: "x"}
	s := newTestService(t, gen)

	_, err := s.CreatePost(context.Background(), &CreatePostRequest{Service: "Medical weight loss", Tone: "Friendly"})
	require.NoError(t, err)

	download := s.ImageHandler("/download/image/", true)

	rec := httptest.NewRecorder()
	download(rec, httptest.NewRequest(http.MethodGet, "/download/image/post_image_20260301_093005.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="post_image_20260301_093005.png"`, rec.Header().Get("Content-Disposition"))

	for _, name := range []string{"../secret.png", "post_image_20990101_000000.png", "caption.txt"} {
		rec := httptest.NewRecorder()
		download(rec, httptest.NewRequest(http.MethodGet, "/download/image/"+name, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, name)
	}

	assert.FileExists(t, filepath.Join(gen.dir, "post_image_20260301_093005.png"))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveGeneration(OutcomeSuccess, true)
	m.ObserveGeneration(OutcomeFailed, false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, fmt.Sprintf(`post_studio_generations_total{outcome=%q} 1`, OutcomeSuccess))
	assert.Contains(t, body, fmt.Sprintf(`post_studio_generations_total{outcome=%q} 1`, OutcomeFailed))
	assert.Contains(t, body, "post_studio_compliance_warnings_total 1")
}
