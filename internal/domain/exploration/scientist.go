package exploration

import (
	"time"

	"github.com/cosmic/backend/internal/domain/shared"
)

// Scientist is a researcher who can be assigned to missions.
// Name and FieldOfStudy are governed: they can only be set through
// NewScientist or the setters, which reject empty values.
type Scientist struct {
	shared.BaseEntity
	Name         string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_scientists_name"`
	FieldOfStudy string    `gorm:"type:varchar(200);not null"`
	Avatar       *string   `gorm:"type:text"`
	Missions     []Mission `gorm:"foreignKey:ScientistID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (Scientist) TableName() string {
	return "scientists"
}

// NewScientist creates a new scientist after validating the governed fields
func NewScientist(name, fieldOfStudy string, avatar *string) (*Scientist, error) {
	s := &Scientist{}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	if err := s.SetFieldOfStudy(fieldOfStudy); err != nil {
		return nil, err
	}
	s.Avatar = avatar
	return s, nil
}

// SetName validates and assigns the scientist's name
func (s *Scientist) SetName(name string) error {
	if err := validateScientistName(name); err != nil {
		return err
	}
	s.Name = name
	s.touch()
	return nil
}

// SetFieldOfStudy validates and assigns the scientist's field of study
func (s *Scientist) SetFieldOfStudy(fieldOfStudy string) error {
	if err := validateFieldOfStudy(fieldOfStudy); err != nil {
		return err
	}
	s.FieldOfStudy = fieldOfStudy
	s.touch()
	return nil
}

// SetAvatar assigns the avatar URL; nil clears it
func (s *Scientist) SetAvatar(avatar *string) {
	s.Avatar = avatar
	s.touch()
}

func (s *Scientist) touch() {
	if !s.IsNew() {
		s.UpdatedAt = time.Now()
	}
}

func validateScientistName(name string) error {
	if name == "" {
		return shared.NewValidationError("name", "Name field is required")
	}
	return nil
}

func validateFieldOfStudy(fieldOfStudy string) error {
	if fieldOfStudy == "" {
		return shared.NewValidationError("field_of_study", "Field of Study is required")
	}
	return nil
}
