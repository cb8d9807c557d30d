package acoustics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/pkg/models"
)

func TestJinc(t *testing.T) {
	assert.Equal(t, 1.0, Jinc(0))
	assert.Equal(t, Jinc(1.3), Jinc(-1.3))

	// The two approximations meet near the switch-over
	assert.InDelta(t, Jinc(besselSeriesLimit-1e-9), Jinc(besselSeriesLimit), 0.05)
}

func TestBesselJ1_TracksReference(t *testing.T) {
	for x := 0.0; x < besselSeriesLimit; x += 0.25 {
		assert.InDelta(t, math.J1(x), BesselJ1(x), 0.01, "x=%g", x)
	}
	for x := besselSeriesLimit; x <= 20; x += 0.5 {
		assert.InDelta(t, math.J1(x), BesselJ1(x), 0.05, "x=%g", x)
	}
	assert.Equal(t, -BesselJ1(7), BesselJ1(-7))
}

func TestComputeDirectivity_OnAxisIsZero(t *testing.T) {
	for _, radius := range []float64{5, 50, 150, 600} {
		for _, f := range []float64{100, 1000, 8000, 20000} {
			pattern, err := ComputeDirectivity(radius, f, DefaultAngularResolution, StandardAir())
			require.NoError(t, err)
			require.Len(t, pattern.Points, DefaultAngularResolution+1)

			assert.Equal(t, 0.0, pattern.Points[0].AngleDeg)
			assert.Equal(t, 0.0, pattern.Points[0].LevelDB, "r=%g f=%g", radius, f)
			assert.Equal(t, 180.0, pattern.Points[DefaultAngularResolution].AngleDeg)
			for _, p := range pattern.Points {
				assert.False(t, math.IsNaN(p.LevelDB))
				assert.False(t, math.IsInf(p.LevelDB, 0))
			}
		}
	}
}

func TestComputeDirectivity_SmallMouthIsOmnidirectional(t *testing.T) {
	pattern, err := ComputeDirectivity(10, 200, DefaultAngularResolution, StandardAir())
	require.NoError(t, err)

	assert.Less(t, pattern.KA, 0.1)
	assert.Equal(t, 180.0, pattern.Coverage6dBDeg)
	assert.Equal(t, 180.0, pattern.Coverage10dBDeg)
	assert.InDelta(t, 0.0, pattern.DirectivityIndexDB, 0.1)
}

func TestComputeDirectivity_NarrowsWithFrequency(t *testing.T) {
	low, err := ComputeDirectivity(150, 2000, 180, StandardAir())
	require.NoError(t, err)
	high, err := ComputeDirectivity(150, 8000, 180, StandardAir())
	require.NoError(t, err)

	assert.Less(t, high.Coverage6dBDeg, low.Coverage6dBDeg)
	assert.Greater(t, high.DirectivityIndexDB, low.DirectivityIndexDB)
	assert.LessOrEqual(t, low.Coverage6dBDeg, low.Coverage10dBDeg)

	// ka·sin θ ≈ 2.2 at the -6 dB point
	want := 2 * math.Asin(2.2/high.KA) * 180 / math.Pi
	assert.InDelta(t, want, high.Coverage6dBDeg, 1.0)
}

func TestCoverageAngle(t *testing.T) {
	points := []models.DirectivityPoint{
		{AngleDeg: 0, LevelDB: 0},
		{AngleDeg: 10, LevelDB: -4},
		{AngleDeg: 20, LevelDB: -8},
		{AngleDeg: 30, LevelDB: -12},
	}
	assert.InDelta(t, 30.0, CoverageAngle(points, -6), 1e-9)
	assert.InDelta(t, 50.0, CoverageAngle(points, -10), 1e-9)
	assert.Equal(t, 180.0, CoverageAngle(points, -20))
}

func TestComputeDirectivity_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		radius     float64
		frequency  float64
		resolution int
	}{
		{"zero radius", 0, 1000, 36},
		{"negative frequency", 100, -1, 36},
		{"infinite frequency", 100, math.Inf(1), 36},
		{"coarse resolution", 100, 1000, 11},
		{"fine resolution", 100, 1000, 361},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeDirectivity(tt.radius, tt.frequency, tt.resolution, StandardAir())
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}
