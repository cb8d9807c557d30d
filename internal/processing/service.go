package processing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/RMahshie/hornlab/internal/acoustics"
	"github.com/RMahshie/hornlab/internal/geometry"
	"github.com/RMahshie/hornlab/internal/ranking"
	"github.com/RMahshie/hornlab/internal/repository"
	"github.com/RMahshie/hornlab/internal/storage"
	"github.com/RMahshie/hornlab/pkg/models"
)

// SimulationService synthesizes, simulates and compares horn designs
type SimulationService interface {
	CreateDesign(ctx context.Context, name string, params models.SynthesisParams) (*models.Design, error)
	RunSimulation(ctx context.Context, designID uuid.UUID) error
	Compare(ctx context.Context, designIDs []string) (*models.Comparison, error)
}

// Options configures the simulation pipeline
type Options struct {
	Simulation         acoustics.Options
	ProfileResolution  int
	MinAcceptableScore float64
	ComparisonWorkers  int
}

type simulationService struct {
	store      storage.ProfileStore
	repository repository.DesignRepository
	opts       Options
}

// NewSimulationService creates a simulation service
func NewSimulationService(store storage.ProfileStore, repo repository.DesignRepository, opts Options) SimulationService {
	if opts.ComparisonWorkers < 1 {
		opts.ComparisonWorkers = 1
	}
	return &simulationService{
		store:      store,
		repository: repo,
		opts:       opts,
	}
}

// CreateDesign synthesizes a profile, stores it and records a pending design
func (s *simulationService) CreateDesign(ctx context.Context, name string, params models.SynthesisParams) (*models.Design, error) {
	if params.Resolution == 0 {
		params.Resolution = s.opts.ProfileResolution
	}

	synth, err := geometry.Synthesize(params)
	if err != nil {
		return nil, err
	}

	designID := uuid.New().String()
	key := storage.ProfileKey(designID)

	log.Info().Str("designID", designID).Str("mode", string(synth.Params.Mode)).Int("samples", len(synth.Profile)).Msg("Storing synthesized profile")
	if err := s.store.SaveProfile(ctx, key, synth.Profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	now := time.Now()
	design := &models.Design{
		ID:         designID,
		Name:       name,
		Mode:       synth.Params.Mode,
		Params:     synth.Params,
		Metadata:   synth.Metadata,
		ProfileKey: &key,
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.Create(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to create design: %w", err)
	}

	return design, nil
}

// RunSimulation analyses a stored design and records its results. Failures
// after the design is found are also recorded on the design.
func (s *simulationService) RunSimulation(ctx context.Context, designID uuid.UUID) error {
	start := time.Now()

	// Step 1: Update to processing status
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 10); err != nil {
		return err
	}

	// Step 2: Get design details
	design, err := s.repository.GetByID(ctx, designID)
	if err != nil {
		return err
	}
	if design.ProfileKey == nil {
		return s.fail(ctx, designID, "design has no stored profile", models.ErrMalformedProfile)
	}

	// Step 3: Load the profile
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 20); err != nil {
		return err
	}
	profile, err := s.store.LoadProfile(ctx, *design.ProfileKey)
	if err != nil {
		return s.fail(ctx, designID, "failed to load profile", err)
	}

	// Step 4: Fractal analysis
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 40); err != nil {
		return err
	}
	fractal, err := geometry.Analyze(profile)
	if err != nil {
		return s.fail(ctx, designID, "fractal analysis failed", err)
	}

	// Step 5: Acoustic simulation
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 60); err != nil {
		return err
	}
	sim, err := acoustics.Simulate(profile, s.opts.Simulation)
	if err != nil {
		return s.fail(ctx, designID, "acoustic simulation failed", err)
	}

	// Step 6: Score
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 80); err != nil {
		return err
	}
	score := ranking.Score(sim)
	warnings := s.warnings(design, fractal, score)

	// Step 7: Store results
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusProcessing, 90); err != nil {
		return err
	}
	results := &models.SimulationResults{
		ID:         uuid.New().String(),
		DesignID:   design.ID,
		Simulation: *sim,
		Fractal:    fractal,
		Score:      score,
		Warnings:   warnings,
		CreatedAt:  time.Now(),
	}
	if err := s.repository.StoreResults(ctx, results); err != nil {
		return s.fail(ctx, designID, "failed to store results", err)
	}

	// Step 8: Mark complete
	if err := s.repository.UpdateStatus(ctx, designID, models.StatusCompleted, 100); err != nil {
		return err
	}

	log.Info().
		Str("designID", design.ID).
		Str("mode", string(design.Mode)).
		Float64("score", score.Overall).
		Float64("cutoffHz", sim.Impedance.CutoffHz).
		Dur("duration", time.Since(start)).
		Msg("Simulation completed")

	return nil
}

// Compare evaluates the impedance of each design concurrently and ranks
// them. Designs that cannot be loaded are reported in the rows with an
// error and never abort the comparison.
func (s *simulationService) Compare(ctx context.Context, designIDs []string) (*models.Comparison, error) {
	if len(designIDs) < ranking.MinCandidates || len(designIDs) > ranking.MaxCandidates {
		return nil, fmt.Errorf("%w: comparison needs %d to %d designs, got %d",
			models.ErrInvalidInput, ranking.MinCandidates, ranking.MaxCandidates, len(designIDs))
	}

	sweep, err := acoustics.NewSweep(s.opts.Simulation.Sweep)
	if err != nil {
		return nil, err
	}

	candidates := make([]ranking.Candidate, len(designIDs))
	p := pool.New().WithMaxGoroutines(s.opts.ComparisonWorkers)
	for i, id := range designIDs {
		p.Go(func() {
			candidates[i] = s.evaluate(ctx, id, sweep)
		})
	}
	p.Wait()

	result, err := ranking.Rank(candidates)
	if err != nil {
		return nil, err
	}

	comparison := &models.Comparison{
		ID:        uuid.New().String(),
		DesignIDs: designIDs,
		Result:    result,
		CreatedAt: time.Now(),
	}
	if err := s.repository.CreateComparison(ctx, comparison); err != nil {
		return nil, fmt.Errorf("failed to store comparison: %w", err)
	}

	log.Info().Str("comparisonID", comparison.ID).Strs("ranking", result.Ranking).Str("recommended", result.Recommended).Msg("Comparison completed")
	return comparison, nil
}

func (s *simulationService) evaluate(ctx context.Context, id string, sweep models.FrequencySweep) ranking.Candidate {
	c := ranking.Candidate{ID: id}

	curve, err := s.impedance(ctx, id, sweep)
	if err != nil {
		log.Warn().Err(err).Str("designID", id).Msg("Comparison candidate could not be evaluated")
		c.Err = err
		return c
	}
	c.Impedance = &curve
	return c
}

func (s *simulationService) impedance(ctx context.Context, id string, sweep models.FrequencySweep) (models.ImpedanceCurve, error) {
	designID, err := uuid.Parse(id)
	if err != nil {
		return models.ImpedanceCurve{}, fmt.Errorf("%w: invalid design id %q", models.ErrInvalidInput, id)
	}
	design, err := s.repository.GetByID(ctx, designID)
	if err != nil {
		return models.ImpedanceCurve{}, err
	}
	if design.ProfileKey == nil {
		return models.ImpedanceCurve{}, fmt.Errorf("%w: design has no stored profile", models.ErrMalformedProfile)
	}
	profile, err := s.store.LoadProfile(ctx, *design.ProfileKey)
	if err != nil {
		return models.ImpedanceCurve{}, err
	}
	return acoustics.ComputeImpedance(profile, sweep, s.opts.Simulation.Medium)
}

func (s *simulationService) warnings(design *models.Design, fractal models.FractalMetrics, score models.AcousticScore) []string {
	var warnings []string
	if score.Overall < s.opts.MinAcceptableScore {
		log.Warn().Str("designID", design.ID).Float64("score", score.Overall).Float64("minimum", s.opts.MinAcceptableScore).Msg("Design scored below the acceptable minimum")
		warnings = append(warnings, fmt.Sprintf("overall score %.2f is below the acceptable minimum %.2f", score.Overall, s.opts.MinAcceptableScore))
	}
	if fractal.LowConfidence {
		warnings = append(warnings, "fractal dimension is a fallback estimate: too few profile segments")
	}
	return warnings
}

// fail records a pipeline failure on the design and returns it
func (s *simulationService) fail(ctx context.Context, designID uuid.UUID, msg string, cause error) error {
	err := fmt.Errorf("%s: %w", msg, cause)
	if uerr := s.repository.UpdateError(ctx, designID, err.Error()); uerr != nil {
		return errors.Join(err, uerr)
	}
	return err
}
