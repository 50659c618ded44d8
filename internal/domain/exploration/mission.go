package exploration

import "github.com/cosmic/backend/internal/domain/shared"

// Mission joins a Scientist to a Planet.
//
// Deleting a scientist nulls scientist_id on that scientist's missions
// instead of deleting them, so the column stays nullable at the storage level.
type Mission struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(200);not null"`
	ScientistID uint   `gorm:"index"`
	PlanetID    uint   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Mission) TableName() string {
	return "missions"
}

// NewMission creates a mission after validating name and both foreign keys.
// Whether the referenced rows exist is checked by the application layer.
func NewMission(name string, scientistID, planetID uint) (*Mission, error) {
	m := &Mission{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetScientistID(scientistID); err != nil {
		return nil, err
	}
	if err := m.SetPlanetID(planetID); err != nil {
		return nil, err
	}
	return m, nil
}

// SetName validates and assigns the mission name
func (m *Mission) SetName(name string) error {
	if name == "" {
		return shared.NewValidationError("name", "Mission must have name.")
	}
	m.Name = name
	return nil
}

// SetScientistID validates and assigns the owning scientist
func (m *Mission) SetScientistID(id uint) error {
	if id == 0 {
		return shared.NewValidationError("scientist_id", "Mission must have scientist ID.")
	}
	m.ScientistID = id
	return nil
}

// SetPlanetID validates and assigns the destination planet
func (m *Mission) SetPlanetID(id uint) error {
	if id == 0 {
		return shared.NewValidationError("planet_id", "Mission must have planet ID.")
	}
	m.PlanetID = id
	return nil
}
