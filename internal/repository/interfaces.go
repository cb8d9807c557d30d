package repository

import (
	"context"

	"github.com/RMahshie/hornlab/pkg/models"
	"github.com/google/uuid"
)

// DesignRepository defines the interface for design, result and comparison
// persistence. Lookups of missing records return models.ErrNotFound.
// ClaimSimulation returns models.ErrSimulationRunning when the design is
// already processing.
type DesignRepository interface {
	Create(ctx context.Context, design *models.Design) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error)
	List(ctx context.Context, limit int) ([]*models.Design, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	ClaimSimulation(ctx context.Context, id uuid.UUID) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	StoreResults(ctx context.Context, results *models.SimulationResults) error
	GetResults(ctx context.Context, designID uuid.UUID) (*models.SimulationResults, error)
	CreateComparison(ctx context.Context, comparison *models.Comparison) error
	GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error)
}
