package geometry

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/RMahshie/hornlab/pkg/models"
)

const (
	// Fallback dimension values for profiles without measurable segments
	fallbackDimension = 1.5
	fallbackVariance  = 0.1

	// smoothBaselineFraction models the area of an equivalent smooth horn
	smoothBaselineFraction = 0.75
)

// Analyze estimates the fractal dimension of a profile from the spread of
// its local slopes and integrates its lateral area and volume as a stack of
// conical frustums.
//
// The global dimension is 1 + min(1, 2·cv), where cv is the coefficient of
// variation of |Δr/Δz| over segments with Δz > 0. Profiles with fewer than two
// such segments get fallback dimension values and LowConfidence set.
func Analyze(profile models.ExpansionProfile) (models.FractalMetrics, error) {
	if err := profile.Validate(2); err != nil {
		return models.FractalMetrics{}, err
	}

	slopes := make([]float64, 0, len(profile)-1)
	var area, volume float64
	for i := 1; i < len(profile); i++ {
		r1, r2 := profile[i-1].Radius, profile[i].Radius
		dz := profile[i].Z - profile[i-1].Z

		volume += math.Pi * dz / 3 * (r1*r1 + r1*r2 + r2*r2)
		area += math.Pi * (r1 + r2) * math.Hypot(dz, r2-r1)

		if dz > 0 {
			slopes = append(slopes, math.Abs((r2-r1)/dz))
		}
	}

	m := models.FractalMetrics{
		SurfaceAreaMM2:  area,
		VolumeMM3:       volume,
		BaselineAreaMM2: smoothBaselineFraction * area,
		PathLengthMM:    ArcLength(profile),
		ExpansionRatio:  profile.ExpansionRatio(),
	}
	if m.BaselineAreaMM2 > 0 {
		m.FractalContribution = (area - m.BaselineAreaMM2) / m.BaselineAreaMM2
	}

	if len(slopes) < 2 {
		m.Dimension = fallbackDimension
		m.DimensionVariance = fallbackVariance
		m.LowConfidence = true
	} else {
		mean, std := stat.PopMeanStdDev(slopes, nil)
		var cv float64
		if mean > 0 {
			cv = std / mean
		}
		m.Dimension = clamp(1+math.Min(1, cv*2), 1, 2)
		m.DimensionVariance = std * 0.5
	}
	m.MinLocalDimension = clamp(m.Dimension-2*m.DimensionVariance, 1, 2)
	m.MaxLocalDimension = clamp(m.Dimension+2*m.DimensionVariance, 1, 2)

	return m, nil
}
