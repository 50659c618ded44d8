package exploration

import (
	"context"

	"github.com/cosmic/backend/internal/domain/exploration"
)

// TransactionScope runs a unit of work against repositories that share one
// database transaction. Each request opens exactly one scope: it is committed
// once when fn returns nil and rolled back when fn returns an error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a transaction.
type TransactionalRepositories interface {
	// Scientists returns the scientist repository scoped to the current transaction
	Scientists() exploration.ScientistRepository
	// Planets returns the planet repository scoped to the current transaction
	Planets() exploration.PlanetRepository
	// Missions returns the mission repository scoped to the current transaction
	Missions() exploration.MissionRepository
}
