package acoustics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RMahshie/hornlab/pkg/models"
)

const (
	// DefaultBaseSensitivityDB is the on-axis level of a perfectly loaded horn
	DefaultBaseSensitivityDB = 107.0

	// powerFloor bounds the transmitted power fraction away from zero
	powerFloor = 1e-6

	passbandDrop = 3.0
)

// RadiationEfficiency is the fraction of driver power radiated at frequency f.
// It ramps linearly as ka/2 up to ka = 2 and saturates at 1; below the flare
// cutoff it additionally falls as (f/fc)² from its value at cutoff.
func RadiationEfficiency(frequencyHz, cutoffHz, mouthRadiusM float64, medium Medium) float64 {
	ramp := func(f float64) float64 {
		return math.Min(1, medium.Wavenumber(f)*mouthRadiusM/kaSaturation)
	}
	if cutoffHz > 0 && frequencyHz < cutoffHz {
		r := frequencyHz / cutoffHz
		return r * r * ramp(cutoffHz)
	}
	return ramp(frequencyHz)
}

// ComputeResponse derives the on-axis SPL curve from an impedance curve:
// base + 10·log10(efficiency·(1 - |Γ|²)).
func ComputeResponse(curve models.ImpedanceCurve, mouthRadiusMM, baseSensitivityDB float64, medium Medium) (models.FrequencyResponse, error) {
	n := curve.Len()
	if n == 0 || len(curve.Reflection) != n {
		return models.FrequencyResponse{}, fmt.Errorf("%w: impedance curve has %d frequencies and %d reflection values", models.ErrInvalidInput, n, len(curve.Reflection))
	}
	if !(mouthRadiusMM > 0) {
		return models.FrequencyResponse{}, fmt.Errorf("%w: mouth radius must be positive, got %g", models.ErrInvalidInput, mouthRadiusMM)
	}
	if err := medium.Validate(); err != nil {
		return models.FrequencyResponse{}, err
	}

	spl := make([]float64, n)
	for i, f := range curve.FrequenciesHz {
		eff := RadiationEfficiency(f, curve.CutoffHz, mouthRadiusMM*mm, medium)
		g := curve.Reflection[i]
		spl[i] = baseSensitivityDB + 10*math.Log10(math.Max(eff*(1-g*g), powerFloor))
	}

	freqs := append([]float64(nil), curve.FrequenciesHz...)
	mid := midBand(spl)
	avg := stat.Mean(mid, nil)
	lo, hi := passbandIndices(freqs, spl, avg-passbandDrop)
	band := spl[lo : hi+1]

	return models.FrequencyResponse{
		FrequenciesHz:  freqs,
		SPL:            spl,
		Passband:       models.Passband{LowHz: freqs[lo], HighHz: freqs[hi]},
		AverageLevelDB: avg,
		SensitivityDB:  floats.Max(mid),
		FlatnessDB:     floats.Max(band) - floats.Min(band),
	}, nil
}

// midBand is the middle half of a curve, or the whole curve when it is too
// short to split.
func midBand(values []float64) []float64 {
	lo, hi := len(values)/4, len(values)*3/4
	if hi <= lo {
		return values
	}
	return values[lo:hi]
}

// passbandIndices scans outward from the sample nearest the geometric centre
// of the sweep while the level stays above threshold. A centre already below
// threshold yields a zero-width band at the centre.
func passbandIndices(freqs, spl []float64, threshold float64) (int, int) {
	center := geometricCenter(freqs)
	if spl[center] <= threshold {
		return center, center
	}
	lo, hi := center, center
	for lo > 0 && spl[lo-1] > threshold {
		lo--
	}
	for hi < len(spl)-1 && spl[hi+1] > threshold {
		hi++
	}
	return lo, hi
}

func geometricCenter(freqs []float64) int {
	target := math.Log(math.Sqrt(freqs[0] * freqs[len(freqs)-1]))
	best, bestDist := 0, math.Inf(1)
	for i, f := range freqs {
		if d := math.Abs(math.Log(f) - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
