package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
	"github.com/cyngu/integration-continue-exo-node/internal/pkg/hasher"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	deleted []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := *user
	created.ID = "user-" + created.Email
	r.users[created.Email] = &created
	clone := created
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			break
		}
	}
	return nil
}

func (r *stubUserRepo) EnsureIndexes(context.Context) error { return nil }

var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestUserService(t *testing.T, repo ports.UserRepository, seed bool) *UserService {
	t.Helper()
	roleRepo := &stubRoleRepo{}
	roles := NewRoleService(roleRepo, nil, zerolog.Nop())
	if seed {
		if err := roles.Seed(context.Background()); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	svc := NewUserService(repo, roles, hasher.NewBcrypt(), NewTokenService("secret", time.Hour), zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func validInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		Name:      "Dupont",
		Firstname: "Alice",
		BirthDate: time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
		City:      "Paris",
		Zipcode:   "75001",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	user, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Password == "s3cret-pass" {
		t.Fatalf("stored password must be a hash, not the plaintext")
	}
	if !hasher.NewBcrypt().Compare("s3cret-pass", user.Password) {
		t.Fatalf("stored hash does not verify against the plaintext")
	}
	if user.Role == nil || user.Role.Name != domain.RoleEmployee {
		t.Fatalf("expected default employee role, got %+v", user.Role)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Duplicate email wins over every other invalid field.
	dup := validInput()
	dup.Name = "123"
	dup.Password = "x"
	if _, err := svc.Create(context.Background(), dup); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Create_FieldOrder(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*ports.CreateUserInput)
	}{
		{"name", func(in *ports.CreateUserInput) { in.Name = "Dupont3" }},
		{"firstname", func(in *ports.CreateUserInput) { in.Firstname = "" }},
		{"password", func(in *ports.CreateUserInput) { in.Password = "short" }},
		{"email", func(in *ports.CreateUserInput) { in.Email = "plainaddress" }},
		{"age", func(in *ports.CreateUserInput) { in.BirthDate = testNow.AddDate(-17, 0, 0) }},
		{"city", func(in *ports.CreateUserInput) { in.City = "Paris 12" }},
		{"zipcode", func(in *ports.CreateUserInput) { in.Zipcode = "7500" }},
	}

	for _, c := range cases {
		repo := newStubUserRepo()
		svc := newTestUserService(t, repo, true)

		in := validInput()
		c.mutate(&in)

		_, err := svc.Create(context.Background(), in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", c.field, err)
		}
		if ve.Field != c.field {
			t.Fatalf("expected field %q, got %q", c.field, ve.Field)
		}
	}
}

func TestUserService_Create_AdultOnBirthday(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	in := validInput()
	in.BirthDate = testNow.AddDate(-18, 0, 0)
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("18th birthday today should pass, got %v", err)
	}
}

func TestUserService_Create_DefaultRoleMissing(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, false) // roles never seeded

	if _, err := svc.Create(context.Background(), validInput()); !errors.Is(err, domain.ErrDefaultRoleNotFound) {
		t.Fatalf("expected ErrDefaultRoleNotFound, got %v", err)
	}
}

func removalToken(t *testing.T, roleName string, permissions []string) string {
	t.Helper()
	tokens := NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(&domain.User{
		ID:    "requester",
		Email: "boss@example.com",
		Role:  &domain.Role{Name: roleName, Permissions: permissions},
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestUserService_Remove_AdminSucceeds(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	user, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	token := removalToken(t, domain.RoleAdmin, []string{"read", "write", "delete", "admin"})
	if err := svc.Remove(context.Background(), user.ID, token); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := svc.FindByEmail(context.Background(), user.Email); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user should be gone, got %v", err)
	}
}

func TestUserService_Remove_EmployeeForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	user, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	token := removalToken(t, domain.RoleEmployee, []string{"read"})
	if err := svc.Remove(context.Background(), user.ID, token); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("no delete should reach storage")
	}
}

func TestUserService_Remove_AdminWithoutDeletePermission(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	token := removalToken(t, domain.RoleAdmin, []string{"read", "write"})
	if err := svc.Remove(context.Background(), "some-id", token); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestUserService_Remove_InvalidToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	if err := svc.Remove(context.Background(), "some-id", "garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	// A token signed with a different secret must be rejected before its
	// role claim is even looked at.
	forged, err := NewTokenService("other-secret", time.Hour).Issue(&domain.User{
		ID:   "attacker",
		Role: &domain.Role{Name: domain.RoleAdmin, Permissions: []string{"delete"}},
	})
	if err != nil {
		t.Fatalf("issue forged token: %v", err)
	}
	if err := svc.Remove(context.Background(), "some-id", forged); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("no delete should reach storage")
	}
}

func TestUserService_Remove_UnknownIDIsIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(t, repo, true)

	token := removalToken(t, domain.RoleAdmin, []string{"read", "write", "delete", "admin"})
	if err := svc.Remove(context.Background(), "no-such-id", token); err != nil {
		t.Fatalf("deleting an unknown id should succeed, got %v", err)
	}
}
