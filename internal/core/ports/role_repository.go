package ports

import (
	"context"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// RoleRepository defines the persistence capabilities for roles.
type RoleRepository interface {
	// FindByName returns domain.ErrRoleNotFound when the role is absent.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Insert(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Count(ctx context.Context) (int64, error)
}

// RoleCache is a read-through cache in front of the role repository.
// A miss returns (nil, nil); cache failures must never fail a lookup.
type RoleCache interface {
	Get(ctx context.Context, name string) (*domain.Role, error)
	Set(ctx context.Context, role *domain.Role) error
}
