package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

func TestDefault_TableSizes(t *testing.T) {
	c := Default()

	assert.Len(t, c.Services(), 5)
	assert.Len(t, c.Tones(), 3)
	assert.Len(t, c.LocalTags(), 10)
	assert.Len(t, c.RiskPhrases(), 11)
	assert.Len(t, c.Styles(), 4)
	assert.Len(t, c.Palettes(), 4)
}

func TestDefault_AccessorsReturnCopies(t *testing.T) {
	c := Default()

	tags := c.LocalTags()
	tags[0] = "mutated"
	phrases := c.RiskPhrases()
	phrases[0] = "mutated"

	assert.Equal(t, "bentonville", c.LocalTags()[0])
	assert.Equal(t, "guarantee", c.RiskPhrases()[0])
}

func TestBrief_FallsBackToGeneralTip(t *testing.T) {
	c := Default()

	for _, s := range c.Services() {
		assert.NotEmpty(t, c.Brief(s), s)
	}
	assert.Equal(t, c.Brief(model.ServiceGeneralTip), c.Brief("Botox"))
}

func TestToneHint_FallsBackToFriendly(t *testing.T) {
	c := Default()

	assert.Equal(t, "polished, trustworthy composition", c.ToneHint(model.ToneWarmProfessional))
	assert.Equal(t, "inviting, approachable composition", c.ToneHint("Sarcastic"))
}

func TestValidate(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		req     model.GenerationRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  model.GenerationRequest{Service: model.ServiceIVTherapy, Tone: model.ToneEducational},
		},
		{
			name:    "unknown service",
			req:     model.GenerationRequest{Service: "Laser", Tone: model.ToneFriendly},
			wantErr: model.ErrUnknownService,
		},
		{
			name:    "unknown tone",
			req:     model.GenerationRequest{Service: model.ServiceWeightLoss, Tone: "Angry"},
			wantErr: model.ErrUnknownTone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Validate(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
