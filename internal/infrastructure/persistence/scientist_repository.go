package persistence

import (
	"context"

	"github.com/cosmic/backend/internal/domain/exploration"
	"github.com/cosmic/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScientistRepository implements ScientistRepository using GORM
type GormScientistRepository struct {
	db *gorm.DB
}

// NewGormScientistRepository creates a new GormScientistRepository
func NewGormScientistRepository(db *gorm.DB) *GormScientistRepository {
	return &GormScientistRepository{db: db}
}

// FindAll returns every scientist ordered by id
func (r *GormScientistRepository) FindAll(ctx context.Context) ([]exploration.Scientist, error) {
	var scientists []exploration.Scientist
	if err := r.db.WithContext(ctx).Order("id").Find(&scientists).Error; err != nil {
		return nil, err
	}
	return scientists, nil
}

// FindByID finds a scientist by its ID
func (r *GormScientistRepository) FindByID(ctx context.Context, id uint) (*exploration.Scientist, error) {
	var scientist exploration.Scientist
	if err := r.db.WithContext(ctx).First(&scientist, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &scientist, nil
}

// FindByPlanet returns the distinct scientists with at least one mission to the planet
func (r *GormScientistRepository) FindByPlanet(ctx context.Context, planetID uint) ([]exploration.Scientist, error) {
	db := r.db.WithContext(ctx)
	missions := db.Model(&exploration.Mission{}).
		Select("scientist_id").
		Where("planet_id = ?", planetID)

	var scientists []exploration.Scientist
	if err := db.Where("id IN (?)", missions).Order("id").Find(&scientists).Error; err != nil {
		return nil, err
	}
	return scientists, nil
}

// ExistsByID checks if a scientist with the given id exists
func (r *GormScientistRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&exploration.Scientist{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByName checks if a scientist with the given name exists
func (r *GormScientistRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&exploration.Scientist{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a scientist. Missions are never written through it.
func (r *GormScientistRepository) Save(ctx context.Context, scientist *exploration.Scientist) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(scientist).Error)
}

// Delete deletes a scientist; its missions keep existing with scientist_id set to NULL
func (r *GormScientistRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&exploration.Scientist{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ exploration.ScientistRepository = (*GormScientistRepository)(nil)
