package persistence

import (
	"context"

	"github.com/cosmic/backend/internal/domain/exploration"
	"gorm.io/gorm"
)

// GormPlanetRepository implements PlanetRepository using GORM
type GormPlanetRepository struct {
	db *gorm.DB
}

// NewGormPlanetRepository creates a new GormPlanetRepository
func NewGormPlanetRepository(db *gorm.DB) *GormPlanetRepository {
	return &GormPlanetRepository{db: db}
}

// FindAll returns every planet ordered by id
func (r *GormPlanetRepository) FindAll(ctx context.Context) ([]exploration.Planet, error) {
	var planets []exploration.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

// FindByID finds a planet by its ID
func (r *GormPlanetRepository) FindByID(ctx context.Context, id uint) (*exploration.Planet, error) {
	var planet exploration.Planet
	if err := r.db.WithContext(ctx).First(&planet, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &planet, nil
}

// FindByScientist returns the distinct planets reached by the scientist's missions
func (r *GormPlanetRepository) FindByScientist(ctx context.Context, scientistID uint) ([]exploration.Planet, error) {
	db := r.db.WithContext(ctx)
	missions := db.Model(&exploration.Mission{}).
		Select("planet_id").
		Where("scientist_id = ?", scientistID)

	var planets []exploration.Planet
	if err := db.Where("id IN (?)", missions).Order("id").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

// ExistsByID checks if a planet with the given id exists
func (r *GormPlanetRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&exploration.Planet{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ exploration.PlanetRepository = (*GormPlanetRepository)(nil)
