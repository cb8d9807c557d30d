package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/hornlab/internal/processing"
	"github.com/RMahshie/hornlab/internal/repository"
	"github.com/RMahshie/hornlab/internal/storage"
	"github.com/RMahshie/hornlab/pkg/models"
)

// DesignHandler handles design and comparison HTTP requests
type DesignHandler struct {
	repo          repository.DesignRepository
	store         storage.ProfileStore
	simulationSvc processing.SimulationService
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(repo repository.DesignRepository, store storage.ProfileStore, simulationSvc processing.SimulationService) *DesignHandler {
	return &DesignHandler{
		repo:          repo,
		store:         store,
		simulationSvc: simulationSvc,
	}
}

// CreateDesign synthesizes a horn profile and records a pending design
func (h *DesignHandler) CreateDesign(ctx context.Context, req *models.CreateDesignRequest) (*models.CreateDesignResponse, error) {
	log.Info().Str("name", req.Body.Name).Str("mode", string(req.Body.Mode)).Msg("Creating new design")

	design, err := h.simulationSvc.CreateDesign(ctx, req.Body.Name, req.Body.Params())
	if err != nil {
		return nil, statusError("Failed to create design", err)
	}

	log.Info().Str("designID", design.ID).Int("samples", design.Params.Resolution+1).Msg("Design created successfully")
	return &models.CreateDesignResponse{Body: designBody(design)}, nil
}

// GetDesign returns the parameters and simulation status of a design
func (h *DesignHandler) GetDesign(ctx context.Context, req *models.GetDesignRequest) (*models.GetDesignResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	design, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, statusError("Design not found", err)
	}

	return &models.GetDesignResponse{Body: designBody(design)}, nil
}

// GetDesignProfile returns the stored expansion profile with a download link
func (h *DesignHandler) GetDesignProfile(ctx context.Context, req *models.GetDesignRequest) (*models.GetProfileResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	design, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, statusError("Design not found", err)
	}
	if design.ProfileKey == nil {
		return nil, huma.Error404NotFound("Design has no stored profile")
	}

	profile, err := h.store.LoadProfile(ctx, *design.ProfileKey)
	if err != nil {
		return nil, statusError("Failed to load profile", err)
	}

	resp := &models.GetProfileResponse{
		Body: models.GetProfileResponseBody{ID: design.ID, Profile: profile},
	}

	// The link is a convenience; the profile itself is already in the body
	url, err := h.store.GenerateDownloadURL(ctx, *design.ProfileKey)
	if err != nil {
		log.Warn().Err(err).Str("designID", design.ID).Msg("Failed to generate profile download URL")
	} else {
		resp.Body.DownloadURL = url
	}

	return resp, nil
}

// StartSimulation starts the acoustic simulation of a design in the background
func (h *DesignHandler) StartSimulation(ctx context.Context, req *models.GetDesignRequest) (*models.StartSimulationResponse, error) {
	log.Info().Str("designID", req.ID).Msg("Simulation start request received")
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	// Claim the design so concurrent requests start a single simulation
	if err := h.repo.ClaimSimulation(ctx, designID); err != nil {
		if errors.Is(err, models.ErrSimulationRunning) {
			return nil, huma.Error409Conflict("Simulation already running", err)
		}
		return nil, statusError("Design not found", err)
	}

	// Start simulation in background (don't wait for completion)
	go func() {
		// Failures are recorded on the design by the service
		if err := h.simulationSvc.RunSimulation(context.Background(), designID); err != nil {
			log.Error().Err(err).Str("designID", designID.String()).Msg("Simulation failed")
		}
	}()

	resp := &models.StartSimulationResponse{}
	resp.Body.Message = "Simulation started successfully"
	return resp, nil
}

// GetResults returns the simulation results of a completed design
func (h *DesignHandler) GetResults(ctx context.Context, req *models.GetDesignRequest) (*models.GetResultsResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	design, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, statusError("Design not found", err)
	}

	if design.Status != models.StatusCompleted {
		return nil, huma.Error409Conflict("Simulation not yet completed",
			fmt.Errorf("design status is %s", design.Status))
	}

	results, err := h.repo.GetResults(ctx, designID)
	if err != nil {
		return nil, statusError("Failed to get results", err)
	}

	return &models.GetResultsResponse{
		Body: models.GetResultsResponseBody{
			ID:         results.ID,
			DesignID:   results.DesignID,
			Simulation: results.Simulation,
			Fractal:    results.Fractal,
			Score:      results.Score,
			Warnings:   results.Warnings,
			CreatedAt:  results.CreatedAt,
		},
	}, nil
}

// CreateComparison ranks two to five stored designs by impedance quality
func (h *DesignHandler) CreateComparison(ctx context.Context, req *models.CreateComparisonRequest) (*models.ComparisonResponse, error) {
	log.Info().Strs("designIDs", req.Body.DesignIDs).Msg("Comparison request received")

	comparison, err := h.simulationSvc.Compare(ctx, req.Body.DesignIDs)
	if err != nil {
		return nil, statusError("Failed to compare designs", err)
	}

	return &models.ComparisonResponse{Body: comparison}, nil
}

// GetComparison returns a stored comparison
func (h *DesignHandler) GetComparison(ctx context.Context, req *models.GetComparisonRequest) (*models.ComparisonResponse, error) {
	comparisonID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid comparison ID", err)
	}

	comparison, err := h.repo.GetComparison(ctx, comparisonID)
	if err != nil {
		return nil, statusError("Comparison not found", err)
	}

	return &models.ComparisonResponse{Body: comparison}, nil
}

func designBody(design *models.Design) models.GetDesignResponseBody {
	return models.GetDesignResponseBody{
		ID:       design.ID,
		Name:     design.Name,
		Status:   design.Status,
		Progress: design.Progress,
		Message:  statusMessage(design.Status, design.Progress),
		Params:   design.Params,
		Metadata: design.Metadata,
		Error:    design.ErrorMsg,
	}
}

// statusError maps domain errors onto HTTP status codes
func statusError(msg string, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error(), err)
	case errors.Is(err, models.ErrMalformedProfile):
		return huma.Error422UnprocessableEntity("Stored profile is malformed", err)
	case errors.Is(err, models.ErrNotFound):
		return huma.Error404NotFound(msg, err)
	default:
		return huma.Error500InternalServerError(msg, err)
	}
}

// statusMessage creates a human-readable status message
func statusMessage(status string, progress int) string {
	switch status {
	case models.StatusPending:
		return "Design ready for simulation"
	case models.StatusProcessing:
		if progress < 40 {
			return "Loading profile..."
		} else if progress < 60 {
			return "Analyzing fractal geometry..."
		} else if progress < 80 {
			return "Simulating acoustics..."
		} else {
			return "Scoring and saving results..."
		}
	case models.StatusCompleted:
		return "Simulation complete!"
	case models.StatusFailed:
		return "Simulation failed."
	default:
		return "Unknown status"
	}
}
