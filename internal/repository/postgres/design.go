package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/RMahshie/hornlab/internal/repository"
	"github.com/RMahshie/hornlab/pkg/models"
)

// PostgresDesignRepository implements DesignRepository for PostgreSQL
type PostgresDesignRepository struct {
	db *sql.DB
}

// NewPostgresDesignRepository creates a new PostgreSQL design repository
func NewPostgresDesignRepository(db *sql.DB) repository.DesignRepository {
	return &PostgresDesignRepository{db: db}
}

const designColumns = `id, name, mode, params, metadata, profile_key, status, progress, error_message, created_at, updated_at, completed_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// Create inserts a new design record
func (r *PostgresDesignRepository) Create(ctx context.Context, design *models.Design) error {
	params, err := json.Marshal(design.Params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	metadata, err := json.Marshal(design.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO designs (id, name, mode, params, metadata, profile_key, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.ExecContext(ctx, query,
		design.ID,
		design.Name,
		string(design.Mode),
		string(params),
		string(metadata),
		design.ProfileKey,
		design.Status,
		design.Progress,
		design.CreatedAt,
		design.UpdatedAt)

	return err
}

// GetByID retrieves a design by ID
func (r *PostgresDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs WHERE id = $1`

	design, err := scanDesign(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: design %s", models.ErrNotFound, id)
	}
	return design, err
}

// List returns the most recent designs, newest first
func (r *PostgresDesignRepository) List(ctx context.Context, limit int) ([]*models.Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*models.Design
	for rows.Next() {
		design, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, design)
	}

	return designs, rows.Err()
}

// UpdateStatus updates the status and progress of a design
func (r *PostgresDesignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE designs
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $4::text = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	return r.execOne(ctx, id, query, status, progress, id, status)
}

// ClaimSimulation moves a design into processing unless a simulation is
// already running on it
func (r *PostgresDesignRepository) ClaimSimulation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE designs
		SET status = 'processing', progress = 0, error_message = NULL, updated_at = NOW()
		WHERE id = $1 AND status <> 'processing'`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM designs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: design %s", models.ErrNotFound, id)
	}
	return fmt.Errorf("%w: design %s", models.ErrSimulationRunning, id)
}

// UpdateError marks a design as failed with the given message
func (r *PostgresDesignRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE designs
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	return r.execOne(ctx, id, query, errorMsg, id)
}

// StoreResults stores simulation results, replacing any earlier run
func (r *PostgresDesignRepository) StoreResults(ctx context.Context, results *models.SimulationResults) error {
	simulation, err := json.Marshal(results.Simulation)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation: %w", err)
	}
	fractal, err := json.Marshal(results.Fractal)
	if err != nil {
		return fmt.Errorf("failed to marshal fractal metrics: %w", err)
	}
	score, err := json.Marshal(results.Score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	warnings := results.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	query := `
		INSERT INTO simulation_results (id, design_id, simulation, fractal, score, overall_score, warnings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (design_id) DO UPDATE
		SET id = EXCLUDED.id, simulation = EXCLUDED.simulation, fractal = EXCLUDED.fractal,
		    score = EXCLUDED.score, overall_score = EXCLUDED.overall_score,
		    warnings = EXCLUDED.warnings, created_at = EXCLUDED.created_at`

	_, err = r.db.ExecContext(ctx, query,
		results.ID,
		results.DesignID,
		string(simulation),
		string(fractal),
		string(score),
		results.Score.Overall,
		pq.Array(warnings),
		results.CreatedAt)

	return err
}

// GetResults retrieves the simulation results of a design
func (r *PostgresDesignRepository) GetResults(ctx context.Context, designID uuid.UUID) (*models.SimulationResults, error) {
	query := `
		SELECT id, design_id, simulation, fractal, score, warnings, created_at
		FROM simulation_results
		WHERE design_id = $1`

	var results models.SimulationResults
	var simulation, fractal, score []byte

	err := r.db.QueryRowContext(ctx, query, designID).Scan(
		&results.ID,
		&results.DesignID,
		&simulation,
		&fractal,
		&score,
		pq.Array(&results.Warnings),
		&results.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: results for design %s", models.ErrNotFound, designID)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(simulation, &results.Simulation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation: %w", err)
	}
	if err := json.Unmarshal(fractal, &results.Fractal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fractal metrics: %w", err)
	}
	if err := json.Unmarshal(score, &results.Score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &results, nil
}

// CreateComparison stores a ranked comparison
func (r *PostgresDesignRepository) CreateComparison(ctx context.Context, comparison *models.Comparison) error {
	result, err := json.Marshal(comparison.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison result: %w", err)
	}

	query := `
		INSERT INTO comparisons (id, design_ids, result, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err = r.db.ExecContext(ctx, query,
		comparison.ID,
		pq.Array(comparison.DesignIDs),
		string(result),
		comparison.CreatedAt)

	return err
}

// GetComparison retrieves a stored comparison
func (r *PostgresDesignRepository) GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error) {
	query := `SELECT id, design_ids, result, created_at FROM comparisons WHERE id = $1`

	var comparison models.Comparison
	var result []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comparison.ID,
		pq.Array(&comparison.DesignIDs),
		&result,
		&comparison.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: comparison %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(result, &comparison.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal comparison result: %w", err)
	}

	return &comparison, nil
}

// execOne runs an update that must touch exactly one design
func (r *PostgresDesignRepository) execOne(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: design %s", models.ErrNotFound, id)
	}
	return nil
}

func scanDesign(row rowScanner) (*models.Design, error) {
	var design models.Design
	var mode string
	var params, metadata []byte
	var profileKey, errorMsg sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&design.ID,
		&design.Name,
		&mode,
		&params,
		&metadata,
		&profileKey,
		&design.Status,
		&design.Progress,
		&errorMsg,
		&design.CreatedAt,
		&design.UpdatedAt,
		&completedAt)

	if err != nil {
		return nil, err
	}

	design.Mode = models.ProfileMode(mode)
	if err := json.Unmarshal(params, &design.Params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}
	if err := json.Unmarshal(metadata, &design.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	if profileKey.Valid {
		design.ProfileKey = &profileKey.String
	}
	if errorMsg.Valid {
		design.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		design.CompletedAt = &completedAt.Time
	}

	return &design, nil
}
