package geometry

import (
	"fmt"
	"math"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Parameter bounds accepted by the synthesizer
const (
	MinOrder = 1
	MaxOrder = 6

	MinPeanoIterations = 1
	MaxPeanoIterations = 5

	MinMandelbrotIterations = 10
	MaxMandelbrotIterations = 1000

	MinResolution     = 10
	MaxResolution     = 2000
	DefaultResolution = 100

	DefaultOrder                = 4
	DefaultPeanoIterations      = 3
	DefaultMandelbrotIterations = 100
)

// WithDefaults fills unset mode parameters with their defaults
func WithDefaults(p models.SynthesisParams) models.SynthesisParams {
	if p.Resolution == 0 {
		p.Resolution = DefaultResolution
	}
	switch p.Mode {
	case models.ModeHilbert:
		if p.Order == 0 {
			p.Order = DefaultOrder
		}
	case models.ModePeano:
		if p.Iterations == 0 {
			p.Iterations = DefaultPeanoIterations
		}
	case models.ModeMandelbrot:
		if p.Iterations == 0 {
			p.Iterations = DefaultMandelbrotIterations
		}
	}
	// The constant only shapes Mandelbrot profiles
	if p.Mode != models.ModeMandelbrot {
		p.CReal, p.CImag = 0, 0
	}
	return p
}

// ValidateParams reports the first parameter outside its documented bounds
func ValidateParams(p models.SynthesisParams) error {
	if err := positive("throat diameter", p.ThroatDiameterMM); err != nil {
		return err
	}
	if err := positive("mouth diameter", p.MouthDiameterMM); err != nil {
		return err
	}
	if err := positive("length", p.LengthMM); err != nil {
		return err
	}
	if p.Resolution < MinResolution || p.Resolution > MaxResolution {
		return fmt.Errorf("%w: resolution must be in [%d, %d], got %d", models.ErrInvalidInput, MinResolution, MaxResolution, p.Resolution)
	}

	switch p.Mode {
	case models.ModeHilbert:
		if p.Order < MinOrder || p.Order > MaxOrder {
			return fmt.Errorf("%w: curve order must be in [%d, %d], got %d", models.ErrInvalidInput, MinOrder, MaxOrder, p.Order)
		}
	case models.ModePeano:
		if p.Iterations < MinPeanoIterations || p.Iterations > MaxPeanoIterations {
			return fmt.Errorf("%w: iteration count must be in [%d, %d], got %d", models.ErrInvalidInput, MinPeanoIterations, MaxPeanoIterations, p.Iterations)
		}
	case models.ModeMandelbrot:
		if p.Iterations < MinMandelbrotIterations || p.Iterations > MaxMandelbrotIterations {
			return fmt.Errorf("%w: mandelbrot iteration count must be in [%d, %d], got %d", models.ErrInvalidInput, MinMandelbrotIterations, MaxMandelbrotIterations, p.Iterations)
		}
		if !finite(p.CReal) || !finite(p.CImag) {
			return fmt.Errorf("%w: mandelbrot constant must be finite", models.ErrInvalidInput)
		}
	case models.ModeConical:
	case models.ModeExponential, models.ModeTractrix:
		if p.MouthDiameterMM <= p.ThroatDiameterMM {
			return fmt.Errorf("%w: %s profile requires mouth diameter > throat diameter", models.ErrInvalidInput, p.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown profile mode %q", models.ErrInvalidInput, p.Mode)
	}
	return nil
}

func positive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", models.ErrInvalidInput, name, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
