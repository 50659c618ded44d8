package exploration

import (
	"context"

	"github.com/cosmic/backend/internal/domain/exploration"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockScientistRepository is a mock implementation of ScientistRepository
type MockScientistRepository struct {
	mock.Mock
}

func (m *MockScientistRepository) FindAll(ctx context.Context) ([]exploration.Scientist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exploration.Scientist), args.Error(1)
}

func (m *MockScientistRepository) FindByID(ctx context.Context, id uint) (*exploration.Scientist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exploration.Scientist), args.Error(1)
}

func (m *MockScientistRepository) FindByPlanet(ctx context.Context, planetID uint) ([]exploration.Scientist, error) {
	args := m.Called(ctx, planetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exploration.Scientist), args.Error(1)
}

func (m *MockScientistRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockScientistRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockScientistRepository) Save(ctx context.Context, scientist *exploration.Scientist) error {
	args := m.Called(ctx, scientist)
	return args.Error(0)
}

func (m *MockScientistRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlanetRepository is a mock implementation of PlanetRepository
type MockPlanetRepository struct {
	mock.Mock
}

func (m *MockPlanetRepository) FindAll(ctx context.Context) ([]exploration.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exploration.Planet), args.Error(1)
}

func (m *MockPlanetRepository) FindByID(ctx context.Context, id uint) (*exploration.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exploration.Planet), args.Error(1)
}

func (m *MockPlanetRepository) FindByScientist(ctx context.Context, scientistID uint) ([]exploration.Planet, error) {
	args := m.Called(ctx, scientistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exploration.Planet), args.Error(1)
}

func (m *MockPlanetRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMissionRepository is a mock implementation of MissionRepository
type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) FindByScientist(ctx context.Context, scientistID uint) ([]exploration.Mission, error) {
	args := m.Called(ctx, scientistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exploration.Mission), args.Error(1)
}

func (m *MockMissionRepository) Save(ctx context.Context, mission *exploration.Mission) error {
	args := m.Called(ctx, mission)
	return args.Error(0)
}

// =============================================================================
// Transaction scope double
// =============================================================================

// mockScope runs fn directly against the mock repositories and records how
// many units of work were opened.
type mockScope struct {
	scientists *MockScientistRepository
	planets    *MockPlanetRepository
	missions   *MockMissionRepository
	executions int
}

func newMockScope() *mockScope {
	return &mockScope{
		scientists: new(MockScientistRepository),
		planets:    new(MockPlanetRepository),
		missions:   new(MockMissionRepository),
	}
}

func (s *mockScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	s.executions++
	return fn(s)
}

func (s *mockScope) Scientists() exploration.ScientistRepository { return s.scientists }
func (s *mockScope) Planets() exploration.PlanetRepository       { return s.planets }
func (s *mockScope) Missions() exploration.MissionRepository     { return s.missions }

func (s *mockScope) assertExpectations(t mock.TestingT) {
	s.scientists.AssertExpectations(t)
	s.planets.AssertExpectations(t)
	s.missions.AssertExpectations(t)
}

func strPtr(s string) *string {
	return &s
}
