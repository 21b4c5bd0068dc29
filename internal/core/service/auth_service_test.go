package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/pkg/hasher"
)

func newTestAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	users := newTestUserService(t, newStubUserRepo(), true)
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(users, hasher.NewBcrypt(), tokens, zerolog.Nop()), users
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	token, user, err := auth.Login(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user == nil || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenService("secret", time.Hour).Decode(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
	if claims.Role.Name != domain.RoleEmployee {
		t.Fatalf("unexpected role claim: %s", claims.Role.Name)
	}
}

func TestAuthService_Login_FailuresAreUniform(t *testing.T) {
	auth, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, _, wrongPassword := auth.Login(context.Background(), "alice@example.com", "bad-pass")
	_, _, unknownEmail := auth.Login(context.Background(), "ghost@example.com", "s3cret-pass")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	// Identical error values: the caller cannot tell the cases apart.
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("login failures must be indistinguishable")
	}
}

func TestAuthService_Signup_IssuesToken(t *testing.T) {
	auth, _ := newTestAuthService(t)

	token, user, err := auth.Signup(context.Background(), validInput())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Role == nil || user.Role.Name != domain.RoleEmployee {
		t.Fatalf("expected resolved employee role, got %+v", user.Role)
	}

	claims, err := NewTokenService("secret", time.Hour).Decode(token)
	if err != nil {
		t.Fatalf("signup token does not verify: %v", err)
	}
	if claims.UserID() != user.ID {
		t.Fatalf("token subject %q does not match user id %q", claims.UserID(), user.ID)
	}
}

func TestAuthService_Signup_PropagatesCreateErrors(t *testing.T) {
	auth, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, _, err := auth.Signup(context.Background(), validInput()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	auth, _ := newTestAuthService(t)
	if msg := auth.Logout(); msg != "Logged out successfully" {
		t.Fatalf("unexpected logout message: %q", msg)
	}
}
