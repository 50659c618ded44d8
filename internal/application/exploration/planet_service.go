package exploration

import (
	"context"

	"github.com/cosmic/backend/internal/domain/shared"
)

// ErrPlanetNotFound is returned when no planet has the requested id
var ErrPlanetNotFound = shared.NewDomainError("NOT_FOUND", "Planet not found")

// PlanetService handles planet read operations
type PlanetService struct {
	scope TransactionScope
}

// NewPlanetService creates a new PlanetService
func NewPlanetService(scope TransactionScope) *PlanetService {
	return &PlanetService{scope: scope}
}

// List returns every planet as a flat record
func (s *PlanetService) List(ctx context.Context) ([]PlanetResponse, error) {
	var responses []PlanetResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		planets, err := repos.Planets().FindAll(ctx)
		if err != nil {
			return err
		}
		responses = ToPlanetResponses(planets)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ListScientists returns the distinct scientists with missions to the planet
func (s *PlanetService) ListScientists(ctx context.Context, id uint) ([]ScientistResponse, error) {
	var responses []ScientistResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Planets().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPlanetNotFound
		}
		scientists, err := repos.Scientists().FindByPlanet(ctx, id)
		if err != nil {
			return err
		}
		responses = ToScientistResponses(scientists)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}
