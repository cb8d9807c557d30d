package acoustics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/RMahshie/hornlab/pkg/models"
)

const (
	pi = math.Pi

	// mm to m
	mm = 1e-3

	// kaSaturation is where the mouth radiation resistance reaches ρcS
	kaSaturation = 2.0
)

// CutoffFrequency returns the flare cutoff c·ln((r_m/r_t)²)/(2π·L) of a
// profile in Hz. Profiles that do not expand have no flare cutoff and
// return 0.
func CutoffFrequency(profile models.ExpansionProfile, medium Medium) float64 {
	length := profile.LengthMM() * mm
	ratio := profile.ExpansionRatio()
	if length <= 0 || ratio <= 1 {
		return 0
	}
	return medium.SpeedOfSound * math.Log(ratio*ratio) / (length * 2 * pi)
}

// RadiationImpedance is the normalised radiation impedance of a baffled
// piston, Z/(ρcS), in the two-regime approximation. Below ka = 2 the
// resistance grows as ka²/4 and the reactance as 8ka/(3π); above it the
// resistance saturates at 1 and the reactance decays towards zero.
func RadiationImpedance(ka float64) complex128 {
	if ka < kaSaturation {
		return complex(ka*ka/4, 8*ka/(3*pi))
	}
	decay := kaSaturation / ka
	return complex(1, 8*kaSaturation/(3*pi)*decay*decay)
}

// InfiniteHornImpedance is the normalised throat impedance of an infinite
// flare with cutoff fc. Above cutoff the resistance is sqrt(1-(fc/f)²); at
// and below it the load is purely reactive, with the evanescent term
// sqrt((fc/f)²-1).
func InfiniteHornImpedance(frequencyHz, cutoffHz float64) complex128 {
	if cutoffHz <= 0 {
		return 1
	}
	g := cutoffHz / frequencyHz
	if g < 1 {
		return complex(math.Sqrt(1-g*g), g)
	}
	return complex(0, g-math.Sqrt(g*g-1))
}

// ThroatImpedance returns the throat impedance normalised to ρ·c·S_throat.
// The mouth radiation resistance, which lies in [0, 1], weights the
// infinite-horn load against the raw mouth load.
func ThroatImpedance(frequencyHz, cutoffHz, ka float64) complex128 {
	zm := RadiationImpedance(ka)
	w := real(zm)
	return complex(w, 0)*InfiniteHornImpedance(frequencyHz, cutoffHz) + complex(1-w, 0)*zm
}

// ReflectionCoefficient is |Γ| = |z - 1| / |z + 1| for a normalised impedance z.
// Any z with non-negative real part gives a value in [0, 1].
func ReflectionCoefficient(z complex128) float64 {
	den := cmplx.Abs(z + 1)
	if den == 0 {
		return 1
	}
	return math.Min(1, cmplx.Abs(z-1)/den)
}

// ComputeImpedance evaluates the throat impedance and reflection coefficient
// of profile at each sweep frequency. Impedances are in mechanical units
// (N·s/m), scaled by ρ·c·S_throat.
func ComputeImpedance(profile models.ExpansionProfile, sweep models.FrequencySweep, medium Medium) (models.ImpedanceCurve, error) {
	if err := validateProfile(profile); err != nil {
		return models.ImpedanceCurve{}, err
	}
	if err := validateSweep(sweep); err != nil {
		return models.ImpedanceCurve{}, err
	}
	if err := medium.Validate(); err != nil {
		return models.ImpedanceCurve{}, err
	}

	throatRadius := profile.Throat().Radius * mm
	mouthRadius := profile.Mouth().Radius * mm
	scale := medium.Rhoc() * pi * throatRadius * throatRadius
	fc := CutoffFrequency(profile, medium)

	n := len(sweep)
	curve := models.ImpedanceCurve{
		FrequenciesHz: make([]float64, n),
		Real:          make([]float64, n),
		Imag:          make([]float64, n),
		Magnitude:     make([]float64, n),
		PhaseDeg:      make([]float64, n),
		Reflection:    make([]float64, n),
		CutoffHz:      fc,
	}

	for i, f := range sweep {
		ka := medium.Wavenumber(f) * mouthRadius
		zn := ThroatImpedance(f, fc, ka)
		z := zn * complex(scale, 0)

		curve.FrequenciesHz[i] = f
		curve.Real[i] = real(z)
		curve.Imag[i] = imag(z)
		curve.Magnitude[i] = cmplx.Abs(z)
		curve.PhaseDeg[i] = cmplx.Phase(z) * 180 / pi
		curve.Reflection[i] = ReflectionCoefficient(zn)
	}

	return curve, nil
}

// validateProfile requires two samples and a positive axial length
func validateProfile(profile models.ExpansionProfile) error {
	if err := profile.Validate(2); err != nil {
		return err
	}
	if profile.LengthMM() <= 0 {
		return fmt.Errorf("%w: profile has zero axial length", models.ErrMalformedProfile)
	}
	return nil
}
