package exploration

import "context"

// ScientistRepository defines the interface for scientist persistence
type ScientistRepository interface {
	// FindAll returns every scientist ordered by id
	FindAll(ctx context.Context) ([]Scientist, error)

	// FindByID finds a scientist without its missions
	FindByID(ctx context.Context, id uint) (*Scientist, error)

	// FindByPlanet returns the distinct scientists that have a mission to the planet
	FindByPlanet(ctx context.Context, planetID uint) ([]Scientist, error)

	// ExistsByID checks if a scientist with the given id exists
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// ExistsByName checks if a scientist with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a scientist
	Save(ctx context.Context, scientist *Scientist) error

	// Delete deletes a scientist by id
	Delete(ctx context.Context, id uint) error
}

// PlanetRepository defines the interface for planet persistence
type PlanetRepository interface {
	// FindAll returns every planet ordered by id
	FindAll(ctx context.Context) ([]Planet, error)

	// FindByID finds a planet by id
	FindByID(ctx context.Context, id uint) (*Planet, error)

	// FindByScientist returns the distinct planets the scientist has missions to
	FindByScientist(ctx context.Context, scientistID uint) ([]Planet, error)

	// ExistsByID checks if a planet with the given id exists
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// MissionRepository defines the interface for mission persistence
type MissionRepository interface {
	// FindByScientist returns the scientist's missions ordered by id
	FindByScientist(ctx context.Context, scientistID uint) ([]Mission, error)

	// Save creates or updates a mission
	Save(ctx context.Context, mission *Mission) error
}
