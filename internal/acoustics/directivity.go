package acoustics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Angular resolution bounds: number of steps across [0°, 180°]
const (
	MinAngularResolution     = 12
	MaxAngularResolution     = 360
	DefaultAngularResolution = 36 // 5° steps
)

const (
	// levelFloor keeps log10 finite at pattern nulls
	levelFloor = 1e-10

	// besselSeriesLimit switches J1 from the power series to the
	// asymptotic form
	besselSeriesLimit = 3.0
)

// BesselJ1 approximates the first-order Bessel function of the first kind:
// a truncated power series for |x| < 3, the large-argument cosine form
// otherwise.
func BesselJ1(x float64) float64 {
	if math.Abs(x) < besselSeriesLimit {
		return x / 2 * jincSeries(x)
	}
	ax := math.Abs(x)
	j := math.Sqrt(2/(pi*ax)) * math.Cos(ax-3*pi/4)
	if x < 0 {
		return -j
	}
	return j
}

// Jinc returns 2·J1(x)/x, with Jinc(0) = 1
func Jinc(x float64) float64 {
	if math.Abs(x) < besselSeriesLimit {
		return jincSeries(x)
	}
	return 2 * BesselJ1(x) / x
}

// jincSeries is 1 - x²/8 + x⁴/192 - x⁶/9216
func jincSeries(x float64) float64 {
	x2 := x * x
	return 1 - x2/8 + x2*x2/192 - x2*x2*x2/9216
}

// ComputeDirectivity evaluates the piston-in-baffle pattern of a mouth of
// the given radius at one frequency, sampled at resolution+1 angles over
// [0°, 180°].
func ComputeDirectivity(mouthRadiusMM, frequencyHz float64, resolution int, medium Medium) (models.DirectivityPattern, error) {
	if !(mouthRadiusMM > 0) || math.IsInf(mouthRadiusMM, 0) {
		return models.DirectivityPattern{}, fmt.Errorf("%w: mouth radius must be positive, got %g", models.ErrInvalidInput, mouthRadiusMM)
	}
	if !(frequencyHz > 0) || math.IsInf(frequencyHz, 0) {
		return models.DirectivityPattern{}, fmt.Errorf("%w: frequency must be positive, got %g", models.ErrInvalidInput, frequencyHz)
	}
	if resolution < MinAngularResolution || resolution > MaxAngularResolution {
		return models.DirectivityPattern{}, fmt.Errorf("%w: angular resolution must be in [%d, %d], got %d", models.ErrInvalidInput, MinAngularResolution, MaxAngularResolution, resolution)
	}
	if err := medium.Validate(); err != nil {
		return models.DirectivityPattern{}, err
	}

	ka := medium.Wavenumber(frequencyHz) * mouthRadiusMM * mm
	step := 180.0 / float64(resolution)

	points := make([]models.DirectivityPoint, resolution+1)
	theta := make([]float64, resolution+1)
	power := make([]float64, resolution+1)
	for i := range points {
		angle := float64(i) * step
		rad := angle * pi / 180

		d := 1.0
		if i > 0 {
			d = Jinc(ka * math.Sin(rad))
		}

		points[i] = models.DirectivityPoint{
			AngleDeg: angle,
			LevelDB:  20 * math.Log10(math.Max(math.Abs(d), levelFloor)),
		}
		theta[i] = rad
		power[i] = d * d * math.Sin(rad)
	}

	return models.DirectivityPattern{
		FrequencyHz:        frequencyHz,
		MouthRadiusMM:      mouthRadiusMM,
		KA:                 ka,
		Points:             points,
		Coverage6dBDeg:     CoverageAngle(points, -6),
		Coverage10dBDeg:    CoverageAngle(points, -10),
		DirectivityIndexDB: directivityIndex(theta, power),
	}, nil
}

// CoverageAngle returns the full included angle inside which the level stays
// above levelDB. The crossing is interpolated between the two samples that
// straddle it. A pattern that never drops below levelDB covers 180°.
func CoverageAngle(points []models.DirectivityPoint, levelDB float64) float64 {
	for i, p := range points {
		if p.LevelDB >= levelDB {
			continue
		}
		if i == 0 {
			return 0
		}
		prev := points[i-1]
		frac := (levelDB - prev.LevelDB) / (p.LevelDB - prev.LevelDB)
		return 2 * (prev.AngleDeg + frac*(p.AngleDeg-prev.AngleDeg))
	}
	return 180
}

// directivityIndex integrates D²·sin θ over the sampled half-plane and
// returns 10·log10(2/∫), the ratio against an omnidirectional source.
func directivityIndex(theta, power []float64) float64 {
	solid := integrate.Trapezoidal(theta, power)
	if solid <= 1e-12 {
		return 0
	}
	return 10 * math.Log10(2/solid)
}
