package exploration

import (
	"bytes"
	"encoding/json"

	"github.com/cosmic/backend/internal/domain/exploration"
)

// CreateScientistRequest represents a request to create a scientist
type CreateScientistRequest struct {
	Name         string  `json:"name" binding:"required"`
	FieldOfStudy string  `json:"field_of_study" binding:"required"`
	Avatar       *string `json:"avatar"`
}

// UpdateScientistRequest represents a partial update of a scientist.
// Only the fields listed here can be changed; a key that is present with a
// null value is applied as an empty value and goes through validation.
type UpdateScientistRequest struct {
	Name         OptionalString `json:"name"`
	FieldOfStudy OptionalString `json:"field_of_study"`
	Avatar       OptionalString `json:"avatar"`
}

// OptionalString records whether a JSON key was present and its string value.
// A JSON null leaves Set true and Value nil.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// String returns the value or "" when it is absent or null
func (o OptionalString) String() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}

// CreateMissionRequest represents a request to create a mission
type CreateMissionRequest struct {
	Name        string `json:"name" binding:"required"`
	ScientistID uint   `json:"scientist_id" binding:"required"`
	PlanetID    uint   `json:"planet_id" binding:"required"`
}

// ScientistResponse is the flat scientist record without relationships
type ScientistResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	FieldOfStudy string  `json:"field_of_study"`
	Avatar       *string `json:"avatar"`
}

// ScientistDetailResponse is a scientist with its missions
type ScientistDetailResponse struct {
	ScientistResponse
	Missions []MissionResponse `json:"missions"`
}

// PlanetResponse is the flat planet record without relationships
type PlanetResponse struct {
	ID                uint    `json:"id"`
	Name              *string `json:"name"`
	DistanceFromEarth *string `json:"distance_from_earth"`
	NearestStar       *string `json:"nearest_star"`
	Image             *string `json:"image"`
}

// MissionResponse is the flat mission record; neither the planet nor the
// scientist is nested.
type MissionResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

// ToScientistResponse converts a domain Scientist to ScientistResponse
func ToScientistResponse(s *exploration.Scientist) ScientistResponse {
	return ScientistResponse{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
		Avatar:       s.Avatar,
	}
}

// ToScientistResponses converts a slice of domain Scientists
func ToScientistResponses(scientists []exploration.Scientist) []ScientistResponse {
	responses := make([]ScientistResponse, len(scientists))
	for i := range scientists {
		responses[i] = ToScientistResponse(&scientists[i])
	}
	return responses
}

// ToScientistDetailResponse combines a scientist with its missions
func ToScientistDetailResponse(s *exploration.Scientist, missions []exploration.Mission) ScientistDetailResponse {
	return ScientistDetailResponse{
		ScientistResponse: ToScientistResponse(s),
		Missions:          ToMissionResponses(missions),
	}
}

// ToPlanetResponse converts a domain Planet to PlanetResponse
func ToPlanetResponse(p *exploration.Planet) PlanetResponse {
	return PlanetResponse{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
		Image:             p.Image,
	}
}

// ToPlanetResponses converts a slice of domain Planets
func ToPlanetResponses(planets []exploration.Planet) []PlanetResponse {
	responses := make([]PlanetResponse, len(planets))
	for i := range planets {
		responses[i] = ToPlanetResponse(&planets[i])
	}
	return responses
}

// ToMissionResponse converts a domain Mission to MissionResponse
func ToMissionResponse(m *exploration.Mission) MissionResponse {
	return MissionResponse{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: m.ScientistID,
		PlanetID:    m.PlanetID,
	}
}

// ToMissionResponses converts a slice of domain Missions
func ToMissionResponses(missions []exploration.Mission) []MissionResponse {
	responses := make([]MissionResponse, len(missions))
	for i := range missions {
		responses[i] = ToMissionResponse(&missions[i])
	}
	return responses
}
