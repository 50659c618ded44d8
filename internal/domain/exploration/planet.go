package exploration

import "github.com/cosmic/backend/internal/domain/shared"

// Planet is a mission destination. None of its columns are governed.
type Planet struct {
	shared.BaseEntity
	Name              *string   `gorm:"type:varchar(200)"`
	DistanceFromEarth *string   `gorm:"type:varchar(100)"`
	NearestStar       *string   `gorm:"type:varchar(200)"`
	Image             *string   `gorm:"type:text"`
	Missions          []Mission `gorm:"foreignKey:PlanetID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (Planet) TableName() string {
	return "planets"
}

// NewPlanet creates a planet; empty strings are stored as NULL
func NewPlanet(name, distanceFromEarth, nearestStar, image string) *Planet {
	return &Planet{
		Name:              optional(name),
		DistanceFromEarth: optional(distanceFromEarth),
		NearestStar:       optional(nearestStar),
		Image:             optional(image),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
