package imagegen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// SafetyConstraints 每个图片提示词都必须包含的安全约束
const SafetyConstraints = "Ad-safe, text-free, no logos, no needles in skin, no before/after, " +
	"professional clinic photography, high detail."

const (
	excerptWords    = 14
	excerptMaxRunes = 120
)

// Rand 风格和配色的随机源，*rand.Rand 满足该接口
type Rand interface {
	Intn(n int) int
}

// LockedRand 可被多个请求共享的随机源
type LockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewLockedRand 创建随机源
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{src: rand.New(rand.NewSource(seed))}
}

// Intn 实现 Rand 接口
func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// Prompt 图片提示词及其组成部分
type Prompt struct {
	Text    string
	Style   string
	Palette string
	Excerpt string
}

// BuildPrompt 组装图片提示词
func BuildPrompt(cat *catalog.Catalog, req dm.GenerationRequest, caption string, rnd Rand) Prompt {
	styles := cat.Styles()
	palettes := cat.Palettes()
	style := styles[rnd.Intn(len(styles))]
	palette := palettes[rnd.Intn(len(palettes))]
	excerpt := Excerpt(caption, req.Angle)

	text := fmt.Sprintf("%s %s %s. %s. Visual narrative aligned with this theme: '%s'. Overall tone: %s.",
		cat.Brief(req.Service), SafetyConstraints, style, palette, excerpt, cat.ToneHint(req.Tone))

	return Prompt{
		Text:    text,
		Style:   style,
		Palette: palette,
		Excerpt: excerpt,
	}
}

// Excerpt 取文案前 14 个词（文案为空时用 angle），按词截断到不超过 120 个字符
func Excerpt(caption, angle string) string {
	src := angle
	if words := strings.Fields(caption); len(words) > 0 {
		if len(words) > excerptWords {
			words = words[:excerptWords]
		}
		src = strings.Join(words, " ")
	}
	return shorten(src, excerptMaxRunes)
}

// shorten 合并空白后按词截断，单个超长词按字符截断
func shorten(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	first := []rune(words[0])
	if len(first) > width {
		return string(first[:width])
	}

	var sb strings.Builder
	sb.WriteString(words[0])
	n := len(first)
	for _, w := range words[1:] {
		wl := len([]rune(w))
		if n+1+wl > width {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(w)
		n += 1 + wl
	}
	return sb.String()
}
