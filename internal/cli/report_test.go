package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/internal/acoustics"
	"github.com/RMahshie/hornlab/internal/geometry"
	"github.com/RMahshie/hornlab/internal/ranking"
	"github.com/RMahshie/hornlab/pkg/models"
)

func TestRenderSynthesis(t *testing.T) {
	synth, err := geometry.Synthesize(models.SynthesisParams{
		Mode: models.ModeHilbert, ThroatDiameterMM: 25.4, MouthDiameterMM: 300, LengthMM: 400, Order: 4,
	})
	require.NoError(t, err)

	out := RenderSynthesis(synth)
	assert.Contains(t, out, "hilbert horn")
	assert.Contains(t, out, "4096")
	assert.Contains(t, out, "1.938")
}

func TestRenderSimulation(t *testing.T) {
	synth, err := geometry.Synthesize(models.SynthesisParams{
		Mode: models.ModeHilbert, ThroatDiameterMM: 25.4, MouthDiameterMM: 300, LengthMM: 400, Order: 4,
	})
	require.NoError(t, err)

	sim, err := acoustics.Simulate(synth.Profile, acoustics.DefaultOptions())
	require.NoError(t, err)
	fractal, err := geometry.Analyze(synth.Profile)
	require.NoError(t, err)

	out := RenderSimulation("scenario", sim, fractal, ranking.Score(sim))
	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "673.9 Hz")
	assert.Contains(t, out, "16000 Hz")
	assert.Contains(t, out, "Overall")
}

func TestRenderRanking(t *testing.T) {
	result := models.RankedResult{
		Rows: []models.ComparisonRow{
			{ID: "a.json", Score: 0.4},
			{ID: "b.json", Error: "missing impedance data"},
			{ID: "c.json", Score: 0.6},
		},
		Ranking:     []string{"c.json", "a.json"},
		Recommended: "c.json",
	}

	out := RenderRanking(result)
	assert.Contains(t, out, "1. c.json")
	assert.Contains(t, out, "2. a.json")
	assert.Contains(t, out, "b.json: missing impedance data")
	assert.Less(t, strings.Index(out, "1. c.json"), strings.Index(out, "2. a.json"))
}

