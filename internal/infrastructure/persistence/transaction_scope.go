package persistence

import (
	"context"

	appexp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/cosmic/backend/internal/domain/exploration"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// If fn returns an error or panics, the transaction is rolled back;
// otherwise it is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appexp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Scientists returns the scientist repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Scientists() exploration.ScientistRepository {
	return NewGormScientistRepository(r.tx)
}

// Planets returns the planet repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Planets() exploration.PlanetRepository {
	return NewGormPlanetRepository(r.tx)
}

// Missions returns the mission repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Missions() exploration.MissionRepository {
	return NewGormMissionRepository(r.tx)
}

var (
	_ appexp.TransactionScope          = (*GormTransactionScope)(nil)
	_ appexp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
