package ports

import (
	"context"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// RoleService exposes role lookups and the startup seed.
type RoleService interface {
	// Seed inserts the default roles when the store is empty. Idempotent.
	Seed(ctx context.Context) error
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
}
