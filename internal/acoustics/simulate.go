package acoustics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RMahshie/hornlab/pkg/models"
)

// KeyFrequencies are the directivity evaluation points used by Simulate;
// only those inside the sweep are evaluated.
var KeyFrequencies = []float64{1000, 2000, 4000, 8000, 16000}

// Options configures a full simulation run
type Options struct {
	Sweep             SweepSpec
	AngularResolution int
	BaseSensitivityDB float64
	Medium            Medium
}

// DefaultOptions matches the reference analysis setup
func DefaultOptions() Options {
	return Options{
		Sweep:             DefaultSweep(),
		AngularResolution: DefaultAngularResolution,
		BaseSensitivityDB: DefaultBaseSensitivityDB,
		Medium:            StandardAir(),
	}
}

// Simulate runs the impedance, frequency response and directivity engines
// on a profile.
func Simulate(profile models.ExpansionProfile, opts Options) (*models.Simulation, error) {
	sweep, err := NewSweep(opts.Sweep)
	if err != nil {
		return nil, err
	}

	curve, err := ComputeImpedance(profile, sweep, opts.Medium)
	if err != nil {
		return nil, err
	}

	mouthRadius := profile.Mouth().Radius
	response, err := ComputeResponse(curve, mouthRadius, opts.BaseSensitivityDB, opts.Medium)
	if err != nil {
		return nil, fmt.Errorf("frequency response: %w", err)
	}

	var patterns []models.DirectivityPattern
	var diTotal float64
	for _, f := range KeyFrequencies {
		if f < opts.Sweep.MinHz || f > opts.Sweep.MaxHz {
			continue
		}
		pattern, err := ComputeDirectivity(mouthRadius, f, opts.AngularResolution, opts.Medium)
		if err != nil {
			return nil, fmt.Errorf("directivity at %g Hz: %w", f, err)
		}
		patterns = append(patterns, pattern)
		diTotal += pattern.DirectivityIndexDB
	}

	sim := &models.Simulation{
		Geometry: models.GeometrySummary{
			ThroatDiameterMM: profile.Throat().Radius * 2,
			MouthDiameterMM:  mouthRadius * 2,
			LengthMM:         profile.LengthMM(),
			ExpansionRatio:   profile.ExpansionRatio(),
		},
		Impedance:         curve,
		MeanImpedance:     stat.Mean(curve.Magnitude, nil),
		AverageReflection: stat.Mean(curve.Reflection, nil),
		PhaseMinDeg:       floats.Min(curve.PhaseDeg),
		PhaseMaxDeg:       floats.Max(curve.PhaseDeg),
		Response:          response,
		Directivity:       patterns,
	}
	if len(patterns) > 0 {
		sim.AverageDirectivityIndexDB = diTotal / float64(len(patterns))
	}
	return sim, nil
}
