// Package ranking scores simulated horns and orders comparison candidates.
package ranking

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Weights of the overall acoustic score
const (
	weightSmoothness = 0.35
	weightFlatness   = 0.30
	weightUniformity = 0.25
	weightDistortion = 0.10
)

const (
	// meanFloor guards coefficient-of-variation ratios against a zero mean
	meanFloor = 1e-12

	// flatnessSpanDB is the mid-band spread at which flatness reaches zero
	flatnessSpanDB = 6.0
)

// Recommendation tiers
const (
	RecommendExcellent  = "excellent"
	RecommendGood       = "good"
	RecommendAcceptable = "acceptable"
	RecommendPoor       = "poor"
)

// Smoothness is max(0, 1 - std/mean) of the impedance magnitudes. An empty
// curve or a mean at zero scores 0.
func Smoothness(magnitudes []float64) float64 {
	return uniformity(magnitudes)
}

// AverageReflection is the mean reflection coefficient over a sweep
func AverageReflection(reflection []float64) float64 {
	if len(reflection) == 0 {
		return 0
	}
	return stat.Mean(reflection, nil)
}

// Composite is the comparison score S·(1 - avgReflection)
func Composite(smoothness, avgReflection float64) float64 {
	return smoothness * (1 - avgReflection)
}

// Score computes the weighted acoustic score of a finished simulation
func Score(sim *models.Simulation) models.AcousticScore {
	s := models.AcousticScore{
		ImpedanceSmoothness: Smoothness(sim.Impedance.Magnitude),
		FrequencyFlatness:   flatness(sim.Response.SPL),
		PolarUniformity:     polarUniformity(sim.Directivity),
	}
	if len(sim.Impedance.Reflection) > 0 {
		s.DistortionScore = math.Max(0, 1-floats.Max(sim.Impedance.Reflection))
	}
	s.Overall = weightSmoothness*s.ImpedanceSmoothness +
		weightFlatness*s.FrequencyFlatness +
		weightUniformity*s.PolarUniformity +
		weightDistortion*s.DistortionScore
	s.Recommendation = Recommend(s.Overall)
	return s
}

// Recommend maps an overall score to its tier
func Recommend(overall float64) string {
	switch {
	case overall > 0.85:
		return RecommendExcellent
	case overall > 0.7:
		return RecommendGood
	case overall > 0.5:
		return RecommendAcceptable
	default:
		return RecommendPoor
	}
}

// flatness scores the level spread over the middle half of the SPL curve
func flatness(spl []float64) float64 {
	if len(spl) == 0 {
		return 0
	}
	mid := spl
	if lo, hi := len(spl)/4, len(spl)*3/4; hi > lo {
		mid = spl[lo:hi]
	}
	spread := floats.Max(mid) - floats.Min(mid)
	return math.Max(0, 1-spread/flatnessSpanDB)
}

func polarUniformity(patterns []models.DirectivityPattern) float64 {
	coverage := make([]float64, len(patterns))
	for i, p := range patterns {
		coverage[i] = p.Coverage6dBDeg
	}
	return uniformity(coverage)
}

func uniformity(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	if math.Abs(mean) < meanFloor {
		return 0
	}
	return math.Max(0, 1-std/mean)
}
