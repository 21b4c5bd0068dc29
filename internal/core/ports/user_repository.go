package ports

import (
	"context"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// UserRepository defines the persistence capabilities for user accounts.
// The storage layer owns email uniqueness via a unique index; the service
// level pre-check is only a fast path.
type UserRepository interface {
	// FindByEmail returns the account with its role reference resolved into
	// the full role record. Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new account and returns it with its generated
	// identifier. Returns domain.ErrEmailTaken on a duplicate email.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindAll lists every account. Roles are not resolved.
	FindAll(ctx context.Context) ([]domain.User, error)
	// DeleteByID removes an account. Deleting an unknown id is not an error.
	DeleteByID(ctx context.Context, id string) error
	// EnsureIndexes creates the unique email index. Called once at startup.
	EnsureIndexes(ctx context.Context) error
}
