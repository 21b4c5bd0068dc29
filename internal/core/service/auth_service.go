package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/api/metrics"
	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

// AuthService composes the user service, hasher and token service into the
// login, signup and logout flows.
type AuthService struct {
	users  ports.UserService
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserService, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller, so account existence
// cannot be probed through this endpoint.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Compare(password, user.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// Signup creates the account and immediately issues a token for it, so a new
// user is logged in right after registering.
func (s *AuthService) Signup(ctx context.Context, input ports.CreateUserInput) (string, *domain.User, error) {
	user, err := s.users.Create(ctx, input)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout acknowledges the request. There is no server-side session state to
// invalidate; the token stays valid until its natural expiry.
func (s *AuthService) Logout() string {
	return "Logged out successfully"
}
