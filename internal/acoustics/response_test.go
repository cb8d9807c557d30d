package acoustics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/pkg/models"
)

func TestRadiationEfficiency(t *testing.T) {
	medium := StandardAir()
	fc := 700.0
	radius := 0.15

	// Continuous at cutoff
	assert.InDelta(t,
		RadiationEfficiency(fc*(1-1e-9), fc, radius, medium),
		RadiationEfficiency(fc, fc, radius, medium), 1e-6)

	assert.Equal(t, 1.0, RadiationEfficiency(20000, fc, radius, medium))
	assert.InDelta(t, 0.25*RadiationEfficiency(fc, fc, radius, medium), RadiationEfficiency(fc/2, fc, radius, medium), 1e-12)

	// No flare cutoff: only the mouth ramp applies
	ka := medium.Wavenumber(100) * 0.01
	assert.InDelta(t, ka/2, RadiationEfficiency(100, 0, 0.01, medium), 1e-12)
}

func TestComputeResponse_Scenario(t *testing.T) {
	profile := scenarioProfile(t)
	sweep, err := NewSweep(DefaultSweep())
	require.NoError(t, err)
	curve, err := ComputeImpedance(profile, sweep, StandardAir())
	require.NoError(t, err)

	resp, err := ComputeResponse(curve, profile.Mouth().Radius, DefaultBaseSensitivityDB, StandardAir())
	require.NoError(t, err)
	require.Len(t, resp.SPL, 100)
	assert.Equal(t, []float64(sweep), resp.FrequenciesHz)

	for i, spl := range resp.SPL {
		assert.False(t, math.IsNaN(spl), "point %d", i)
		assert.LessOrEqual(t, spl, DefaultBaseSensitivityDB+1e-9)
		assert.GreaterOrEqual(t, spl, DefaultBaseSensitivityDB-60-1e-9)
	}

	assert.InDelta(t, 106.91, resp.AverageLevelDB, 0.05)
	assert.InEpsilon(t, 725.76, resp.Passband.LowHz, 1e-3)
	assert.Equal(t, 20000.0, resp.Passband.HighHz)
	assert.InDelta(t, 106.99, resp.SensitivityDB, 0.05)
	assert.InDelta(t, 2.66, resp.FlatnessDB, 0.05)
}

func TestComputeResponse_FullReflectionHitsFloor(t *testing.T) {
	curve := models.ImpedanceCurve{
		FrequenciesHz: []float64{1000, 2000, 4000, 8000},
		Reflection:    []float64{1, 1, 1, 1},
	}
	resp, err := ComputeResponse(curve, 100, 100, StandardAir())
	require.NoError(t, err)

	for _, spl := range resp.SPL {
		assert.InDelta(t, 40.0, spl, 1e-9)
	}
	assert.InDelta(t, 0.0, resp.FlatnessDB, 1e-9)
	assert.Equal(t, 1000.0, resp.Passband.LowHz)
	assert.Equal(t, 8000.0, resp.Passband.HighHz)
}

func TestPassbandIndices(t *testing.T) {
	freqs := []float64{100, 200, 400, 800, 1600, 3200, 6400}

	tests := []struct {
		name           string
		spl            []float64
		threshold      float64
		wantLo, wantHi int
	}{
		{"whole sweep", []float64{90, 90, 90, 90, 90, 90, 90}, 87, 0, 6},
		{"rolled off both ends", []float64{80, 86, 90, 91, 90, 88, 70}, 87, 2, 5},
		{"centre below threshold", []float64{90, 90, 90, 70, 90, 90, 90}, 87, 3, 3},
		{"stops at first dip", []float64{90, 80, 90, 90, 90, 80, 90}, 87, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := passbandIndices(freqs, tt.spl, tt.threshold)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestComputeResponse_Invalid(t *testing.T) {
	curve := models.ImpedanceCurve{FrequenciesHz: []float64{1000}, Reflection: []float64{0.5}}

	_, err := ComputeResponse(models.ImpedanceCurve{}, 100, 107, StandardAir())
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = ComputeResponse(models.ImpedanceCurve{FrequenciesHz: []float64{1000, 2000}, Reflection: []float64{0.1}}, 100, 107, StandardAir())
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = ComputeResponse(curve, 0, 107, StandardAir())
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = ComputeResponse(curve, 100, 107, Medium{})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
