package acoustics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Sweep point bounds
const (
	MinSweepPoints = 10
	MaxSweepPoints = 500
)

// SweepSpec describes a logarithmic frequency sweep
type SweepSpec struct {
	MinHz  float64 `json:"freq_min"`
	MaxHz  float64 `json:"freq_max"`
	Points int     `json:"freq_points"`
}

// DefaultSweep is 500 Hz to 20 kHz in 100 points
func DefaultSweep() SweepSpec {
	return SweepSpec{MinHz: 500, MaxHz: 20000, Points: 100}
}

// Validate checks frequency bounds and point count
func (s SweepSpec) Validate() error {
	if !(s.MinHz > 0) || math.IsInf(s.MinHz, 0) {
		return fmt.Errorf("%w: minimum frequency must be positive, got %g", models.ErrInvalidInput, s.MinHz)
	}
	if !(s.MaxHz > 0) || math.IsInf(s.MaxHz, 0) {
		return fmt.Errorf("%w: maximum frequency must be positive, got %g", models.ErrInvalidInput, s.MaxHz)
	}
	if s.MinHz >= s.MaxHz {
		return fmt.Errorf("%w: minimum frequency %g must be below maximum %g", models.ErrInvalidInput, s.MinHz, s.MaxHz)
	}
	if s.Points < MinSweepPoints || s.Points > MaxSweepPoints {
		return fmt.Errorf("%w: frequency points must be in [%d, %d], got %d", models.ErrInvalidInput, MinSweepPoints, MaxSweepPoints, s.Points)
	}
	return nil
}

// NewSweep returns Points log-spaced frequencies, f_i = min·(max/min)^(i/(n-1)).
// The end points are exactly MinHz and MaxHz.
func NewSweep(spec SweepSpec) (models.FrequencySweep, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	freqs := floats.LogSpan(make([]float64, spec.Points), spec.MinHz, spec.MaxHz)
	freqs[0] = spec.MinHz
	freqs[len(freqs)-1] = spec.MaxHz
	return freqs, nil
}

func validateSweep(sweep models.FrequencySweep) error {
	if len(sweep) == 0 {
		return fmt.Errorf("%w: frequency sweep is empty", models.ErrInvalidInput)
	}
	for i, f := range sweep {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: sweep frequency %d is not positive (%g)", models.ErrInvalidInput, i, f)
		}
		if i > 0 && f <= sweep[i-1] {
			return fmt.Errorf("%w: sweep is not ascending at point %d", models.ErrInvalidInput, i)
		}
	}
	return nil
}
