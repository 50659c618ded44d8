package exploration

import (
	"context"
	"errors"

	"github.com/cosmic/backend/internal/domain/exploration"
	"github.com/cosmic/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var (
	// ErrScientistNotFound is returned when no scientist has the requested id
	ErrScientistNotFound = shared.NewDomainError("NOT_FOUND", "Scientist not found")
	// ErrScientistNameTaken is returned when another scientist already uses the name
	ErrScientistNameTaken = shared.NewDomainError("ALREADY_EXISTS", "Scientist with this name already exists")
)

// ScientistService handles scientist-related business operations
type ScientistService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewScientistService creates a new ScientistService
func NewScientistService(scope TransactionScope, logger *zap.Logger) *ScientistService {
	return &ScientistService{
		scope:  scope,
		logger: logger,
	}
}

// List returns every scientist as a flat record
func (s *ScientistService) List(ctx context.Context) ([]ScientistResponse, error) {
	var responses []ScientistResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		scientists, err := repos.Scientists().FindAll(ctx)
		if err != nil {
			return err
		}
		responses = ToScientistResponses(scientists)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list scientists", zap.Error(err))
		return nil, err
	}
	return responses, nil
}

// Create validates and persists a new scientist. A duplicate name is
// rejected before the insert is attempted.
func (s *ScientistService) Create(ctx context.Context, req CreateScientistRequest) (*ScientistResponse, error) {
	scientist, err := exploration.NewScientist(req.Name, req.FieldOfStudy, req.Avatar)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Scientists().ExistsByName(ctx, scientist.Name)
		if err != nil {
			return err
		}
		if exists {
			return ErrScientistNameTaken
		}
		return repos.Scientists().Save(ctx, scientist)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Scientist created",
		zap.Uint("scientist_id", scientist.ID),
		zap.String("name", scientist.Name))

	response := ToScientistResponse(scientist)
	return &response, nil
}

// GetByID returns a scientist together with its missions
func (s *ScientistService) GetByID(ctx context.Context, id uint) (*ScientistDetailResponse, error) {
	var response ScientistDetailResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		scientist, err := repos.Scientists().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrScientistNotFound)
		}
		missions, err := repos.Missions().FindByScientist(ctx, id)
		if err != nil {
			return err
		}
		response = ToScientistDetailResponse(scientist, missions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// EnsureExists returns ErrScientistNotFound when no scientist has the given id
func (s *ScientistService) EnsureExists(ctx context.Context, id uint) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Scientists().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrScientistNotFound
		}
		return nil
	})
}

// Update applies the fields present in req through the entity's validating setters
func (s *ScientistService) Update(ctx context.Context, id uint, req UpdateScientistRequest) (*ScientistResponse, error) {
	var response ScientistResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		scientist, err := repos.Scientists().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrScientistNotFound)
		}

		if req.Name.Set && req.Name.String() != scientist.Name {
			if err := scientist.SetName(req.Name.String()); err != nil {
				return err
			}
			exists, err := repos.Scientists().ExistsByName(ctx, scientist.Name)
			if err != nil {
				return err
			}
			if exists {
				return ErrScientistNameTaken
			}
		}
		if req.FieldOfStudy.Set {
			if err := scientist.SetFieldOfStudy(req.FieldOfStudy.String()); err != nil {
				return err
			}
		}
		if req.Avatar.Set {
			scientist.SetAvatar(req.Avatar.Value)
		}

		if err := repos.Scientists().Save(ctx, scientist); err != nil {
			return err
		}
		response = ToScientistResponse(scientist)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Scientist updated", zap.Uint("scientist_id", id))
	return &response, nil
}

// Delete removes a scientist. The scientist's missions are kept with their
// scientist reference cleared by the database.
func (s *ScientistService) Delete(ctx context.Context, id uint) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return notFoundAs(repos.Scientists().Delete(ctx, id), ErrScientistNotFound)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Scientist deleted", zap.Uint("scientist_id", id))
	return nil
}

// ListPlanets returns the distinct planets the scientist has missions to
func (s *ScientistService) ListPlanets(ctx context.Context, id uint) ([]PlanetResponse, error) {
	var responses []PlanetResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Scientists().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrScientistNotFound
		}
		planets, err := repos.Planets().FindByScientist(ctx, id)
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

// notFoundAs replaces a generic not-found error with a resource specific one
func notFoundAs(err error, notFound *shared.DomainError) error {
	if errors.Is(err, shared.ErrNotFound) {
		return notFound
	}
	return err
}
