package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/internal/acoustics"
	"github.com/RMahshie/hornlab/internal/geometry"
	"github.com/RMahshie/hornlab/pkg/models"
)

func TestSmoothness(t *testing.T) {
	assert.Equal(t, 1.0, Smoothness([]float64{4, 4, 4}))
	assert.InDelta(t, 0.5, Smoothness([]float64{1, 3}), 1e-12)
	assert.Equal(t, 0.0, Smoothness([]float64{0, 0, 0}))
	assert.Equal(t, 0.0, Smoothness(nil))
	// std/mean above 1 clamps at zero
	assert.Equal(t, 0.0, Smoothness([]float64{0, 0, 0, 100}))
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		overall float64
		want    string
	}{
		{0.95, RecommendExcellent},
		{0.85, RecommendGood},
		{0.71, RecommendGood},
		{0.7, RecommendAcceptable},
		{0.51, RecommendAcceptable},
		{0.5, RecommendPoor},
		{0, RecommendPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommend(tt.overall), "overall=%g", tt.overall)
	}
}

func TestScore_Weights(t *testing.T) {
	sim := &models.Simulation{
		Impedance: models.ImpedanceCurve{
			FrequenciesHz: []float64{1, 2},
			Magnitude:     []float64{5, 5},
			Reflection:    []float64{0.2, 0.4},
		},
		Response: models.FrequencyResponse{SPL: []float64{100, 100, 103, 100}},
		Directivity: []models.DirectivityPattern{
			{Coverage6dBDeg: 90},
			{Coverage6dBDeg: 90},
		},
	}

	s := Score(sim)
	assert.Equal(t, 1.0, s.ImpedanceSmoothness)
	assert.InDelta(t, 0.5, s.FrequencyFlatness, 1e-12)
	assert.Equal(t, 1.0, s.PolarUniformity)
	assert.InDelta(t, 0.6, s.DistortionScore, 1e-12)
	assert.InDelta(t, 0.35+0.15+0.25+0.06, s.Overall, 1e-12)
	assert.Equal(t, RecommendGood, s.Recommendation)
}

func TestScore_Deterministic(t *testing.T) {
	synth, err := geometry.Synthesize(models.SynthesisParams{
		Mode:             models.ModeHilbert,
		ThroatDiameterMM: 25.4,
		MouthDiameterMM:  300,
		LengthMM:         400,
		Order:            4,
	})
	require.NoError(t, err)
	sim, err := acoustics.Simulate(synth.Profile, acoustics.DefaultOptions())
	require.NoError(t, err)

	first := Score(sim)
	assert.Equal(t, first, Score(sim))

	assert.InDelta(t, 0.967, first.ImpedanceSmoothness, 0.005)
	assert.InDelta(t, 0.939, first.FrequencyFlatness, 0.005)
	assert.InDelta(t, 0.109, first.DistortionScore, 0.005)
	for _, v := range []float64{first.ImpedanceSmoothness, first.FrequencyFlatness, first.PolarUniformity, first.DistortionScore, first.Overall} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
