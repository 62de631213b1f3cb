package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/catalog"
)

func TestScanner_Scan(t *testing.T) {
	s := NewScanner(catalog.Default().RiskPhrases())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "cure and guarantee",
			text: "This cures everything, guaranteed!",
			want: []string{"guarantee", "guaranteed", "cure"},
		},
		{
			name: "clean caption",
			text: "Book your consult today",
			want: []string{},
		},
		{
			name: "case insensitive",
			text: "INSTANT RESULTS with No Side Effects",
			want: []string{"no side effects", "instant results"},
		},
		{
			name: "numeric overlap is kept",
			text: "Robes are 100% cotton",
			want: []string{"100%"},
		},
		{
			name: "slash variant",
			text: "See our before/after gallery",
			want: []string{"before/after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := s.Scan(tt.text)
			assert.Equal(t, tt.want, report.Flags)
			assert.Equal(t, len(tt.want) == 0, report.Passed())
		})
	}
}

func TestReport_Banner(t *testing.T) {
	s := NewScanner(catalog.Default().RiskPhrases())

	warn := s.Scan("A miracle cure")
	assert.Equal(t, "Review needed: potential risk phrases detected → cure, miracle", warn.Banner())

	pass := s.Scan("Hydrate well this summer")
	assert.Contains(t, pass.Banner(), "(heuristic)")
}
