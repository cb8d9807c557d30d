package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RMahshie/hornlab/pkg/models"
)

// Candidate count bounds for a comparison
const (
	MinCandidates = 2
	MaxCandidates = 5
)

var errMissingImpedance = errors.New("missing impedance data")

// Candidate is one entry of a comparison. Err records why the candidate
// could not be evaluated.
type Candidate struct {
	ID        string
	Impedance *models.ImpedanceCurve
	Err       error
}

// Rank scores each candidate by smoothness·(1 - average reflection) and
// orders them descending. Candidates without impedance data stay in Rows
// with their error and are left out of Ranking.
func Rank(candidates []Candidate) (models.RankedResult, error) {
	if len(candidates) < MinCandidates || len(candidates) > MaxCandidates {
		return models.RankedResult{}, fmt.Errorf("%w: comparison needs %d to %d candidates, got %d",
			models.ErrInvalidInput, MinCandidates, MaxCandidates, len(candidates))
	}

	rows := make([]models.ComparisonRow, len(candidates))
	for i, c := range candidates {
		rows[i] = evaluate(c)
	}

	result := models.RankedResult{Rows: rows, Ranking: Order(rows)}
	if len(result.Ranking) > 0 {
		result.Recommended = result.Ranking[0]
	}
	return result, nil
}

// Order returns the ids of rows without errors, sorted by descending score.
// Ties keep their input order.
func Order(rows []models.ComparisonRow) []string {
	scored := make([]models.ComparisonRow, 0, len(rows))
	for _, r := range rows {
		if r.Error == "" {
			scored = append(scored, r)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	ids := make([]string, len(scored))
	for i, r := range scored {
		ids[i] = r.ID
	}
	return ids
}

func evaluate(c Candidate) models.ComparisonRow {
	row := models.ComparisonRow{ID: c.ID}
	err := c.Err
	if err == nil && (c.Impedance == nil || c.Impedance.Len() == 0) {
		err = errMissingImpedance
	}
	if err != nil {
		row.Error = err.Error()
		return row
	}

	row.Smoothness = Smoothness(c.Impedance.Magnitude)
	row.AverageReflection = AverageReflection(c.Impedance.Reflection)
	row.Score = Composite(row.Smoothness, row.AverageReflection)
	return row
}
