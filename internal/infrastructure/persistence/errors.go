package persistence

import (
	"errors"
	"fmt"

	"github.com/cosmic/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM's dialect-neutral errors onto domain errors.
// It relies on gorm.Config.TranslateError being enabled.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", shared.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	default:
		return err
	}
}
