package processing

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RMahshie/hornlab/pkg/models"
)

// MockDesignRepository implements repository.DesignRepository for testing
type MockDesignRepository struct {
	mock.Mock
}

func (m *MockDesignRepository) Create(ctx context.Context, design *models.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	args := m.Called(ctx, id)
	design, _ := args.Get(0).(*models.Design)
	return design, args.Error(1)
}

func (m *MockDesignRepository) List(ctx context.Context, limit int) ([]*models.Design, error) {
	args := m.Called(ctx, limit)
	designs, _ := args.Get(0).([]*models.Design)
	return designs, args.Error(1)
}

func (m *MockDesignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	args := m.Called(ctx, id, status, progress)
	return args.Error(0)
}

func (m *MockDesignRepository) ClaimSimulation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDesignRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

func (m *MockDesignRepository) StoreResults(ctx context.Context, results *models.SimulationResults) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

func (m *MockDesignRepository) GetResults(ctx context.Context, designID uuid.UUID) (*models.SimulationResults, error) {
	args := m.Called(ctx, designID)
	results, _ := args.Get(0).(*models.SimulationResults)
	return results, args.Error(1)
}

func (m *MockDesignRepository) CreateComparison(ctx context.Context, comparison *models.Comparison) error {
	args := m.Called(ctx, comparison)
	return args.Error(0)
}

func (m *MockDesignRepository) GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error) {
	args := m.Called(ctx, id)
	comparison, _ := args.Get(0).(*models.Comparison)
	return comparison, args.Error(1)
}

// MockProfileStore implements storage.ProfileStore for testing
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) SaveProfile(ctx context.Context, key string, profile models.ExpansionProfile) error {
	args := m.Called(ctx, key, profile)
	return args.Error(0)
}

func (m *MockProfileStore) LoadProfile(ctx context.Context, key string) (models.ExpansionProfile, error) {
	args := m.Called(ctx, key)
	profile, _ := args.Get(0).(models.ExpansionProfile)
	return profile, args.Error(1)
}

func (m *MockProfileStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockProfileStore) DeleteProfile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
