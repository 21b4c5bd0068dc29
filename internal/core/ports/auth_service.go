package ports

import (
	"context"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// AuthService orchestrates login, signup and logout.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// authenticated user. Unknown email and wrong password both collapse
	// into domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Signup creates the account and returns a token for it.
	Signup(ctx context.Context, input CreateUserInput) (string, *domain.User, error)
	// Logout is a stateless acknowledgement; issued tokens stay valid
	// until they expire.
	Logout() string
}
