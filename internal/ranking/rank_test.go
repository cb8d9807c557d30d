package ranking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/hornlab/pkg/models"
)

func curve(magnitudes, reflection []float64) *models.ImpedanceCurve {
	freqs := make([]float64, len(magnitudes))
	for i := range freqs {
		freqs[i] = float64(1000 * (i + 1))
	}
	return &models.ImpedanceCurve{FrequenciesHz: freqs, Magnitude: magnitudes, Reflection: reflection}
}

func TestOrder_StableOnTies(t *testing.T) {
	rows := []models.ComparisonRow{
		{ID: "first", Score: 0.9},
		{ID: "second", Score: 0.7},
		{ID: "third", Score: 0.9},
	}
	assert.Equal(t, []string{"first", "third", "second"}, Order(rows))
}

func TestRank(t *testing.T) {
	candidates := []Candidate{
		// smoothness 1, reflection 0.5 -> 0.5
		{ID: "flat-lossy", Impedance: curve([]float64{2, 2, 2}, []float64{0.5, 0.5, 0.5})},
		// smoothness 1, reflection 0.1 -> 0.9
		{ID: "flat-matched", Impedance: curve([]float64{3, 3, 3, 3}, []float64{0.1, 0.1, 0.1, 0.1})},
		// std/mean = 0.5, reflection 0 -> 0.5
		{ID: "ragged", Impedance: curve([]float64{1, 3}, []float64{0, 0})},
	}

	result, err := Rank(candidates)
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)

	assert.InDelta(t, 0.5, result.Rows[0].Score, 1e-12)
	assert.InDelta(t, 0.9, result.Rows[1].Score, 1e-12)
	assert.InDelta(t, 0.5, result.Rows[2].Score, 1e-12)
	assert.InDelta(t, 0.5, result.Rows[2].Smoothness, 1e-12)

	assert.Equal(t, []string{"flat-matched", "flat-lossy", "ragged"}, result.Ranking)
	assert.Equal(t, "flat-matched", result.Recommended)
}

func TestRank_FailedCandidatesAreReportedNotRanked(t *testing.T) {
	candidates := []Candidate{
		{ID: "missing", Err: errors.New("profile not found")},
		{ID: "good", Impedance: curve([]float64{1, 1}, []float64{0.2, 0.2})},
		{ID: "empty", Impedance: &models.ImpedanceCurve{}},
		{ID: "nil"},
	}

	result, err := Rank(candidates)
	require.NoError(t, err)
	require.Len(t, result.Rows, 4)

	assert.Equal(t, "profile not found", result.Rows[0].Error)
	assert.Empty(t, result.Rows[1].Error)
	assert.Equal(t, "missing impedance data", result.Rows[2].Error)
	assert.Equal(t, "missing impedance data", result.Rows[3].Error)

	assert.Equal(t, []string{"good"}, result.Ranking)
	assert.Equal(t, "good", result.Recommended)
}

func TestRank_AllFailed(t *testing.T) {
	result, err := Rank([]Candidate{{ID: "a", Err: errors.New("x")}, {ID: "b", Err: errors.New("y")}})
	require.NoError(t, err)
	assert.Empty(t, result.Ranking)
	assert.Empty(t, result.Recommended)
	assert.Len(t, result.Rows, 2)
}

func TestRank_CandidateCount(t *testing.T) {
	one := []Candidate{{ID: "a"}}
	_, err := Rank(one)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	six := make([]Candidate, 6)
	_, err = Rank(six)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
