package copywriter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

type fakeGenerator struct {
	content  string
	err      error
	received []*schema.Message
}

func (f *fakeGenerator) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.received = input
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{Role: schema.Assistant, Content: f.content}, nil
}

var sampleRequest = dm.GenerationRequest{
	Service: dm.ServiceWeightLoss,
	Tone:    dm.ToneWarmProfessional,
	Angle:   "Seasonal wellness tip",
	CTA:     "Book a consult this week",
}

func TestComposer_Structured(t *testing.T) {
	gen := &fakeGenerator{content: `{"caption":"Spring reset starts here. Book a consult this week!","hashtags":["#WeightLoss","nwa","  Wellness ","nwa"]}`}
	c := NewComposer(gen, catalog.Default())

	res, err := c.Compose(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, "Spring reset starts here. Book a consult this week!", res.Caption)
	assert.Equal(t, []string{
		"weightloss", "nwa", "wellness",
		"bentonville", "northwestarkansas", "arkansashealth", "arkansaswellness",
		"wellnessjourney", "selfcare", "healthyhabits",
	}, res.Hashtags)

	require.Len(t, gen.received, 2)
	assert.Equal(t, schema.System, gen.received[0].Role)
	assert.Equal(t, SystemInstruction, gen.received[0].Content)
	assert.Contains(t, gen.received[1].Content, "Service: Medical weight loss\n")
}

func TestComposer_RawFallback(t *testing.T) {
	gen := &fakeGenerator{content: "  Feel your best this fall. Book a consult this week!  "}
	c := NewComposer(gen, catalog.Default())

	res, err := c.Compose(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, "Feel your best this fall. Book a consult this week!", res.Caption)
	assert.Equal(t, catalog.Default().LocalTags(), res.Hashtags)
}

func TestComposer_TransportError(t *testing.T) {
	boom := errors.New("connection reset")
	c := NewComposer(&fakeGenerator{err: boom}, catalog.Default())

	_, err := c.Compose(context.Background(), sampleRequest)
	assert.ErrorIs(t, err, boom)
}

func TestBuildUserMessage(t *testing.T) {
	msg := BuildUserMessage(sampleRequest)

	want := strings.Join([]string{
		"Service: Medical weight loss",
		"Angle: Seasonal wellness tip",
		"CTA: Book a consult this week",
		"Tone: Warm professional",
		"Audience: adults in Northwest Arkansas.",
		"Return JSON with keys: caption (string), hashtags (array of 10, lowercase, niche+local mix).",
	}, "\n")
	assert.Equal(t, want, msg)
}
