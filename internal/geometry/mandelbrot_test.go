package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeCount(t *testing.T) {
	tests := []struct {
		name    string
		cr, ci  float64
		maxIter int
		want    int
	}{
		{"origin is bounded", 0, 0, 100, 100},
		{"main cardioid centre", -0.5, 0, 250, 250},
		{"tip of the real axis stays on |z| = 2", -2, 0, 100, 100},
		{"c = 1 escapes on third iteration", 1, 0, 100, 2},
		{"c = 2 escapes on second iteration", 2, 0, 100, 1},
		{"far outside escapes immediately", 3, 3, 100, 0},
		{"bounded by minimum iteration count", -0.75, 0.1, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCount(tt.cr, tt.ci, tt.maxIter))
		})
	}
}

func TestEscapeRatio_Bounds(t *testing.T) {
	for _, c := range [][2]float64{{-0.75, 0}, {0.25, 0.5}, {-1.2, 0.2}, {0.4, 0.4}, {5, 0}} {
		r := EscapeRatio(c[0], c[1], 100)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
	assert.Equal(t, 0.0, EscapeRatio(0, 0, 0))
}
