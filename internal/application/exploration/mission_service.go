package exploration

import (
	"context"
	"errors"

	"github.com/cosmic/backend/internal/domain/exploration"
	"github.com/cosmic/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MissionService handles mission-related business operations
type MissionService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewMissionService creates a new MissionService
func NewMissionService(scope TransactionScope, logger *zap.Logger) *MissionService {
	return &MissionService{
		scope:  scope,
		logger: logger,
	}
}

// Create persists a new mission and returns the planet it targets.
// Both referenced rows must exist; a missing one is reported as a
// validation error on the corresponding field.
func (s *MissionService) Create(ctx context.Context, req CreateMissionRequest) (*PlanetResponse, error) {
	mission, err := exploration.NewMission(req.Name, req.ScientistID, req.PlanetID)
	if err != nil {
		return nil, err
	}

	var response PlanetResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Scientists().ExistsByID(ctx, mission.ScientistID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewValidationError("scientist_id", "Scientist does not exist")
		}

		planet, err := repos.Planets().FindByID(ctx, mission.PlanetID)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("planet_id", "Planet does not exist")
		}
		if err != nil {
			return err
		}

		if err := repos.Missions().Save(ctx, mission); err != nil {
			return err
		}
		response = ToPlanetResponse(planet)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Mission created",
		zap.Uint("mission_id", mission.ID),
		zap.Uint("scientist_id", mission.ScientistID),
		zap.Uint("planet_id", mission.PlanetID))

	return &response, nil
}
