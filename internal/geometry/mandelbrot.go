package geometry

// EscapeCount iterates z = z² + c from z = 0 and returns the index of the
// first iteration whose result satisfies |z|² > 4, or maxIter when the orbit
// stays bounded for maxIter iterations.
func EscapeCount(cReal, cImag float64, maxIter int) int {
	zr, zi := 0.0, 0.0
	for n := 0; n < maxIter; n++ {
		zr, zi = zr*zr-zi*zi+cReal, 2*zr*zi+cImag
		if zr*zr+zi*zi > 4 {
			return n
		}
	}
	return maxIter
}

// EscapeRatio is EscapeCount normalised by maxIter, in [0, 1]
func EscapeRatio(cReal, cImag float64, maxIter int) float64 {
	if maxIter <= 0 {
		return 0
	}
	return float64(EscapeCount(cReal, cImag, maxIter)) / float64(maxIter)
}
