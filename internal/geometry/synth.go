// Package geometry synthesizes horn expansion profiles from fractal
// constructions and measures their roughness.
//
// Every generation mode maps a normalised axial position t in [0, 1] to a
// radius between the throat and mouth radii. Downstream engines only ever see
// the resulting models.ExpansionProfile and are agnostic of the mode.
package geometry

import (
	"math"

	"github.com/RMahshie/hornlab/pkg/models"
)

const (
	// peanoDimension is the dimension reported for iteration-mode profiles
	peanoDimension = 1.89

	// mandelbrotSampleRadius is the distance from c at which the escape
	// count is sampled
	mandelbrotSampleRadius = 0.1

	// mandelbrotModulation caps the relative radius ripple
	mandelbrotModulation = 0.05

	// mandelbrotRipple is the angular rate of the ripple along t
	mandelbrotRipple = 20.0
)

// shape returns the radius at normalised position t together with the
// fractal detail that modulated it (zero for unmodulated modes).
type shape func(t float64) (radius, detail float64)

// Synthesize builds an expansion profile for the requested mode.
// Unset mode parameters take their defaults; out-of-range parameters yield
// models.ErrInvalidInput.
func Synthesize(params models.SynthesisParams) (*models.SynthesizedProfile, error) {
	params = WithDefaults(params)
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	rt := params.ThroatDiameterMM / 2
	rm := params.MouthDiameterMM / 2
	fn := shapeFor(params, rt, rm)

	n := params.Resolution
	profile := make(models.ExpansionProfile, n+1)
	var detail []float64
	if params.Mode == models.ModeMandelbrot {
		detail = make([]float64, n+1)
	}

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		r, d := fn(t)
		profile[i] = models.ProfilePoint{Z: params.LengthMM * t, Radius: r}
		if detail != nil {
			detail[i] = d
		}
	}

	return &models.SynthesizedProfile{
		Params:        params,
		Profile:       profile,
		Metadata:      metadataFor(params, profile),
		FractalDetail: detail,
	}, nil
}

func shapeFor(p models.SynthesisParams, rt, rm float64) shape {
	span := rm - rt
	switch p.Mode {
	case models.ModeHilbert:
		return func(t float64) (float64, float64) {
			return rt + span*smoothstep(t), 0
		}
	case models.ModePeano:
		return func(t float64) (float64, float64) {
			return rt + span*math.Pow(t, 1.3), 0
		}
	case models.ModeMandelbrot:
		return func(t float64) (float64, float64) {
			theta := 2 * math.Pi * t
			detail := EscapeRatio(
				p.CReal+mandelbrotSampleRadius*math.Cos(theta),
				p.CImag+mandelbrotSampleRadius*math.Sin(theta),
				p.Iterations,
			)
			base := rt + span*math.Pow(t, 1.2)
			return base * (1 + mandelbrotModulation*detail*math.Sin(mandelbrotRipple*t)), detail
		}
	case models.ModeExponential:
		ratio := rm / rt
		return func(t float64) (float64, float64) {
			return rt * math.Pow(ratio, t), 0
		}
	case models.ModeTractrix:
		flare := math.Acosh(rm / rt)
		return func(t float64) (float64, float64) {
			return rt * math.Cosh(flare*t), 0
		}
	default:
		return func(t float64) (float64, float64) {
			return rt + span*t, 0
		}
	}
}

func metadataFor(p models.SynthesisParams, profile models.ExpansionProfile) models.ProfileMetadata {
	meta := models.ProfileMetadata{
		Mode:           p.Mode,
		PointCount:     len(profile),
		ArcLengthMM:    ArcLength(profile),
		ExpansionRatio: p.MouthDiameterMM / p.ThroatDiameterMM,
	}
	meta.PathLengthMM = meta.ArcLengthMM

	switch p.Mode {
	case models.ModeHilbert:
		points := ipow(2, 3*p.Order)
		meta.PointCount = points
		meta.PathLengthMM = p.LengthMM * float64(points-1) / float64(ipow(2, p.Order)-1)
		meta.ReportedFractalDimension = 2 - math.Pow(2, -float64(p.Order))
	case models.ModePeano:
		points := ipow(3, 3*p.Iterations)
		meta.PointCount = points
		meta.PathLengthMM = p.LengthMM * float64(points-1) / float64(ipow(3, p.Iterations)-1)
		meta.ReportedFractalDimension = peanoDimension
	case models.ModeMandelbrot:
		d := 1 + math.Log(meta.ExpansionRatio)/math.Log(float64(p.Iterations))
		meta.ReportedFractalDimension = clamp(d, 1, 2)
	default:
		if m, err := Analyze(profile); err == nil {
			meta.ReportedFractalDimension = m.Dimension
		}
	}
	return meta
}

// ArcLength is the polyline length of the profile curve in the (z, r) plane
func ArcLength(profile models.ExpansionProfile) float64 {
	var total float64
	for i := 1; i < len(profile); i++ {
		total += math.Hypot(profile[i].Z-profile[i-1].Z, profile[i].Radius-profile[i-1].Radius)
	}
	return total
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func ipow(base, exp int) int {
	result := 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
