package acoustics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/internal/geometry"
	"github.com/RMahshie/hornlab/pkg/models"
)

// scenarioProfile is the 25.4 mm / 300 mm / 400 mm curve-order horn
func scenarioProfile(t *testing.T) models.ExpansionProfile {
	t.Helper()
	return synthProfile(t, models.SynthesisParams{Mode: models.ModeHilbert, Order: 4})
}

func synthProfile(t *testing.T, p models.SynthesisParams) models.ExpansionProfile {
	t.Helper()
	if p.ThroatDiameterMM == 0 {
		p.ThroatDiameterMM, p.MouthDiameterMM, p.LengthMM = 25.4, 300, 400
	}
	result, err := geometry.Synthesize(p)
	require.NoError(t, err)
	return result.Profile
}

func cylinder(radius, length float64) models.ExpansionProfile {
	return models.ExpansionProfile{
		{Z: 0, Radius: radius},
		{Z: length / 2, Radius: radius},
		{Z: length, Radius: radius},
	}
}

func allModes() []models.SynthesisParams {
	return []models.SynthesisParams{
		{Mode: models.ModeHilbert, Order: 1},
		{Mode: models.ModeHilbert, Order: 6},
		{Mode: models.ModePeano, Iterations: 3},
		{Mode: models.ModeMandelbrot, Iterations: 100, CReal: -0.75},
		{Mode: models.ModeMandelbrot, Iterations: 1000, CReal: 0.3, CImag: 0.5},
		{Mode: models.ModeConical},
		{Mode: models.ModeExponential},
		{Mode: models.ModeTractrix},
		{Mode: models.ModeHilbert, ThroatDiameterMM: 50, MouthDiameterMM: 60, LengthMM: 1000},
		{Mode: models.ModeHilbert, ThroatDiameterMM: 200, MouthDiameterMM: 25, LengthMM: 50},
	}
}
