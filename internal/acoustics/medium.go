// Package acoustics evaluates horn expansion profiles analytically: throat
// impedance and reflection over a frequency sweep, on-axis frequency response
// and piston-in-baffle directivity.
//
// The model is a simplified horn-equation approximation. The throat sees the
// infinite-horn impedance of a flare with the profile's cutoff frequency,
// blended with the mouth radiation load according to how well the mouth
// radiates at the given ka. Every engine is a pure function of its inputs.
package acoustics

import (
	"fmt"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Medium holds the physical constants of the propagation medium
type Medium struct {
	SpeedOfSound float64 `json:"speed_of_sound"` // m/s
	AirDensity   float64 `json:"air_density"`    // kg/m³
}

// StandardAir is air at roughly 20 °C and one atmosphere
func StandardAir() Medium {
	return Medium{SpeedOfSound: 343.0, AirDensity: 1.21}
}

// Validate rejects non-positive constants
func (m Medium) Validate() error {
	if !(m.SpeedOfSound > 0) {
		return fmt.Errorf("%w: speed of sound must be positive, got %g", models.ErrInvalidInput, m.SpeedOfSound)
	}
	if !(m.AirDensity > 0) {
		return fmt.Errorf("%w: air density must be positive, got %g", models.ErrInvalidInput, m.AirDensity)
	}
	return nil
}

// Rhoc is the characteristic impedance ρ·c of the medium
func (m Medium) Rhoc() float64 {
	return m.AirDensity * m.SpeedOfSound
}

// Wavenumber returns k = 2πf/c
func (m Medium) Wavenumber(frequencyHz float64) float64 {
	return 2 * pi * frequencyHz / m.SpeedOfSound
}
