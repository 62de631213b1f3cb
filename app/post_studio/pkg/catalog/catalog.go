package catalog

import (
	"fmt"
	"slices"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// Catalog 进程级只读配置表，启动时构建一次，之后只通过访问器读取
type Catalog struct {
	services    []model.Service
	tones       []model.Tone
	localTags   []string
	riskPhrases []string
	briefs      map[model.Service]string
	styles      []string
	palettes    []string
	toneHints   map[model.Tone]string
}

// Default 返回诊所 Instagram 帖子的默认配置表
func Default() *Catalog {
	return &Catalog{
		services: []model.Service{
			model.ServiceChiropractic,
			model.ServiceWeightLoss,
			model.ServiceIVTherapy,
			model.ServiceRegenerative,
			model.ServiceGeneralTip,
		},
		tones: []model.Tone{
			model.ToneFriendly,
			model.ToneWarmProfessional,
			model.ToneEducational,
		},
		localTags: []string{
			"bentonville", "northwestarkansas", "nwa", "arkansashealth", "arkansaswellness",
			"wellnessjourney", "selfcare", "healthyhabits", "cliniclife", "feelbetter",
		},
		riskPhrases: []string{
			"guarantee", "guaranteed", "cure", "100%", "before and after", "before/after",
			"dm for medical advice", "no side effects", "instant results", "miracle", "permanent results",
		},
		// 只描述场景和物件，不出现人物和操作过程
		briefs: map[model.Service]string{
			model.ServiceWeightLoss: "Modern kitchen or clinic nutrition display; fresh produce, water bottle, journal, " +
				"measuring tape on table; calm, motivating wellness vibe.",
			model.ServiceChiropractic: "Serene therapy room; chiropractic table, rolled towels, spine model as abstract decor; " +
				"soft daylight; minimalist, clean lines.",
			model.ServiceIVTherapy: "Calm infusion lounge; IV stand and bag visible as objects (not attached to a person), " +
				"cozy blanket on chair, citrus water on side table; spa-like atmosphere.",
			model.ServiceRegenerative: "Abstract cellular/leaf motifs with clean lab glassware on a tray; soft bokeh; " +
				"scientific yet soothing aesthetic.",
			model.ServiceGeneralTip: "Spa-like still life with plants, diffuser, folded towels, sunlight across a wood surface; " +
				"balanced composition, airy feel.",
		},
		styles: []string{
			"soft natural lighting, pastel neutrals, matte textures",
			"bright overcast lighting, airy whites, light wood accents",
			"warm morning light, gentle shadows, subtle film grain",
			"cool daylight, glass and steel accents, minimal reflections",
		},
		palettes: []string{
			"palette of sand beige, eucalyptus green, and off-white",
			"palette of pearl white, warm taupe, and sage",
			"palette of cool gray, linen, and pale teal",
			"palette of ivory, blush, and soft stone",
		},
		toneHints: map[model.Tone]string{
			model.ToneFriendly:         "inviting, approachable composition",
			model.ToneWarmProfessional: "polished, trustworthy composition",
			model.ToneEducational:      "clean, informational composition",
		},
	}
}

// Services 可选服务列表
func (c *Catalog) Services() []model.Service { return slices.Clone(c.services) }

// Tones 可选语气列表
func (c *Catalog) Tones() []model.Tone { return slices.Clone(c.tones) }

// LocalTags 本地标签，也是标签补齐时的填充顺序
func (c *Catalog) LocalTags() []string { return slices.Clone(c.localTags) }

// RiskPhrases 合规风险词表
func (c *Catalog) RiskPhrases() []string { return slices.Clone(c.riskPhrases) }

// Styles 光线风格候选
func (c *Catalog) Styles() []string { return slices.Clone(c.styles) }

// Palettes 配色候选
func (c *Catalog) Palettes() []string { return slices.Clone(c.palettes) }

// Brief 返回服务对应的画面描述，未知服务回退到通用健康建议
func (c *Catalog) Brief(s model.Service) string {
	if b, ok := c.briefs[s]; ok {
		return b
	}
	return c.briefs[model.ServiceGeneralTip]
}

// ToneHint 返回语气对应的构图提示，未知语气回退到 Friendly
func (c *Catalog) ToneHint(t model.Tone) string {
	if h, ok := c.toneHints[t]; ok {
		return h
	}
	return c.toneHints[model.ToneFriendly]
}

// HasService 服务是否在可选列表中
func (c *Catalog) HasService(s model.Service) bool { return slices.Contains(c.services, s) }

// HasTone 语气是否在可选列表中
func (c *Catalog) HasTone(t model.Tone) bool { return slices.Contains(c.tones, t) }

// Validate 校验表单中的两个枚举字段，angle 和 cta 为自由文本不做校验
func (c *Catalog) Validate(req model.GenerationRequest) error {
	if !c.HasService(req.Service) {
		return fmt.Errorf("%w: %q", model.ErrUnknownService, req.Service)
	}
	if !c.HasTone(req.Tone) {
		return fmt.Errorf("%w: %q", model.ErrUnknownTone, req.Tone)
	}
	return nil
}
