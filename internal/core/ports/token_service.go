package ports

import "github.com/cyngu/integration-continue-exo-node/internal/core/domain"

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue signs a token carrying the user identity and role snapshot.
	Issue(user *domain.User) (string, error)
	// Decode parses a token and verifies its signature and expiry before
	// returning the claims. Returns domain.ErrInvalidToken on any failure.
	Decode(token string) (*domain.TokenClaims, error)
}
