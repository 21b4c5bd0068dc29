package ports

import (
	"context"
	"time"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// CreateUserInput carries the raw signup fields before validation.
type CreateUserInput struct {
	Email     string
	Password  string
	Name      string
	Firstname string
	BirthDate time.Time
	City      string
	Zipcode   string
}

// UserService exposes account management operations.
type UserService interface {
	// Create runs the full validation pipeline, hashes the password,
	// attaches the default role and persists the account.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// FindByEmail returns the account with its role resolved.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// Remove deletes the account with the given id after verifying the
	// requester token and checking its admin role and delete permission.
	Remove(ctx context.Context, id, rawToken string) error
}
