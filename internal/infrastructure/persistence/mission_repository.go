package persistence

import (
	"context"

	"github.com/cosmic/backend/internal/domain/exploration"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMissionRepository implements MissionRepository using GORM
type GormMissionRepository struct {
	db *gorm.DB
}

// NewGormMissionRepository creates a new GormMissionRepository
func NewGormMissionRepository(db *gorm.DB) *GormMissionRepository {
	return &GormMissionRepository{db: db}
}

// FindByScientist returns the scientist's missions ordered by id
func (r *GormMissionRepository) FindByScientist(ctx context.Context, scientistID uint) ([]exploration.Mission, error) {
	var missions []exploration.Mission
	if err := r.db.WithContext(ctx).
		Where("scientist_id = ?", scientistID).
		Order("id").
		Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// Save creates or updates a mission without touching the referenced planet
func (r *GormMissionRepository) Save(ctx context.Context, mission *exploration.Mission) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(mission).Error)
}

var _ exploration.MissionRepository = (*GormMissionRepository)(nil)
