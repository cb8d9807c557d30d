package models

import (
	"fmt"
	"math"
)

// ProfileMode identifies how an expansion profile was generated
type ProfileMode string

const (
	ModeHilbert     ProfileMode = "hilbert"
	ModePeano       ProfileMode = "peano"
	ModeMandelbrot  ProfileMode = "mandelbrot"
	ModeConical     ProfileMode = "conical"
	ModeExponential ProfileMode = "exponential"
	ModeTractrix    ProfileMode = "tractrix"
)

// ProfilePoint is a single axial sample of a horn expansion profile
type ProfilePoint struct {
	Z      float64 `json:"z" doc:"Axial position in mm"`
	Radius float64 `json:"radius" doc:"Radius in mm"`
}

// ExpansionProfile is the ordered throat-to-mouth radius curve of a horn.
// The first sample is the throat and the last is the mouth.
type ExpansionProfile []ProfilePoint

// Validate checks that the profile has at least minSamples samples, strictly
// positive finite radii and non-decreasing, non-negative axial positions.
func (p ExpansionProfile) Validate(minSamples int) error {
	if len(p) < minSamples {
		return fmt.Errorf("%w: profile has %d samples, at least %d required", ErrMalformedProfile, len(p), minSamples)
	}
	for i, pt := range p {
		if math.IsNaN(pt.Z) || math.IsInf(pt.Z, 0) || pt.Z < 0 {
			return fmt.Errorf("%w: sample %d has invalid z %g", ErrMalformedProfile, i, pt.Z)
		}
		if math.IsNaN(pt.Radius) || math.IsInf(pt.Radius, 0) || pt.Radius <= 0 {
			return fmt.Errorf("%w: sample %d has non-positive radius %g", ErrMalformedProfile, i, pt.Radius)
		}
		if i > 0 && pt.Z < p[i-1].Z {
			return fmt.Errorf("%w: z decreases at sample %d (%g < %g)", ErrMalformedProfile, i, pt.Z, p[i-1].Z)
		}
	}
	return nil
}

// Throat returns the first sample. The profile must not be empty.
func (p ExpansionProfile) Throat() ProfilePoint { return p[0] }

// Mouth returns the last sample. The profile must not be empty.
func (p ExpansionProfile) Mouth() ProfilePoint { return p[len(p)-1] }

// LengthMM is the axial distance from throat to mouth
func (p ExpansionProfile) LengthMM() float64 {
	if len(p) == 0 {
		return 0
	}
	return p.Mouth().Z - p.Throat().Z
}

// ExpansionRatio is mouth radius over throat radius
func (p ExpansionProfile) ExpansionRatio() float64 {
	if len(p) == 0 || p.Throat().Radius == 0 {
		return 0
	}
	return p.Mouth().Radius / p.Throat().Radius
}

// SynthesisParams selects a generation mode and its parameters.
// Diameters and length are in millimetres.
type SynthesisParams struct {
	Mode             ProfileMode `json:"mode" enum:"hilbert,peano,mandelbrot,conical,exponential,tractrix" doc:"Profile generation mode"`
	ThroatDiameterMM float64     `json:"throat_diameter_mm" doc:"Throat diameter in mm"`
	MouthDiameterMM  float64     `json:"mouth_diameter_mm" doc:"Mouth diameter in mm"`
	LengthMM         float64     `json:"length_mm" doc:"Horn length in mm"`
	Order            int         `json:"order,omitempty" doc:"Hilbert curve order (1-6)"`
	Iterations       int         `json:"iterations,omitempty" doc:"Peano iterations (1-5) or Mandelbrot iteration count (10-1000)"`
	CReal            float64     `json:"c_real,omitempty" doc:"Mandelbrot constant, real part"`
	CImag            float64     `json:"c_imag,omitempty" doc:"Mandelbrot constant, imaginary part"`
	Resolution       int         `json:"resolution,omitempty" doc:"Number of profile segments (samples = resolution + 1)"`
}

// ProfileMetadata describes a synthesized profile
type ProfileMetadata struct {
	Mode                     ProfileMode `json:"mode"`
	ReportedFractalDimension float64     `json:"fractal_dimension"`
	PointCount               int         `json:"point_count"`
	PathLengthMM             float64     `json:"path_length_mm"`
	ArcLengthMM              float64     `json:"arc_length_mm"`
	ExpansionRatio           float64     `json:"expansion_ratio"`
}

// SynthesizedProfile is the output of the profile synthesizer
type SynthesizedProfile struct {
	Params        SynthesisParams  `json:"params"`
	Profile       ExpansionProfile `json:"profile"`
	Metadata      ProfileMetadata  `json:"metadata"`
	FractalDetail []float64        `json:"fractal_detail,omitempty"`
}

// FractalMetrics summarises the roughness and bulk geometry of a profile
type FractalMetrics struct {
	Dimension           float64 `json:"fractal_dimension"`
	DimensionVariance   float64 `json:"dimension_variance"`
	MinLocalDimension   float64 `json:"min_local_dimension"`
	MaxLocalDimension   float64 `json:"max_local_dimension"`
	SurfaceAreaMM2      float64 `json:"surface_area_mm2"`
	VolumeMM3           float64 `json:"volume_mm3"`
	BaselineAreaMM2     float64 `json:"baseline_area_mm2"`
	FractalContribution float64 `json:"fractal_contribution"`
	PathLengthMM        float64 `json:"path_length_mm"`
	ExpansionRatio      float64 `json:"expansion_ratio"`
	// LowConfidence is set when fewer than two segments had positive axial
	// length and the dimension fields hold fallback values.
	LowConfidence bool `json:"low_confidence,omitempty"`
}
