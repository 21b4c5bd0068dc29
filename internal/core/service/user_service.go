package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/api/metrics"
	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
	"github.com/cyngu/integration-continue-exo-node/internal/core/validate"
)

// UserService implements account creation, lookup and admin-gated removal.
type UserService struct {
	repo   ports.UserRepository
	roles  ports.RoleService
	hasher ports.PasswordHasher
	tokens ports.TokenService
	now    func() time.Time
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, roles ports.RoleService, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
		log:    log,
	}
}

// Create validates the input, hashes the password, attaches the default
// "employee" role and persists the account. The check order is part of the
// contract: duplicate email wins over every field error, and field errors
// are reported in a fixed sequence.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	if !validate.Name(in.Name) {
		return nil, domain.NewValidationError("name")
	}
	if !validate.Name(in.Firstname) {
		return nil, domain.NewValidationError("firstname")
	}
	if !validate.Password(in.Password) {
		return nil, domain.NewValidationErrorMsg("password", "password must be at least 6 characters long")
	}
	if !validate.Email(in.Email) {
		return nil, domain.NewValidationError("email")
	}
	if validate.Underage(in.BirthDate, s.now()) {
		return nil, domain.NewValidationErrorMsg("age", "user must be at least 18 years old")
	}
	if !validate.Name(in.City) {
		return nil, domain.NewValidationError("city")
	}
	if !validate.Zipcode(in.Zipcode) {
		return nil, domain.NewValidationError("zipcode")
	}

	role, err := s.roles.FindByName(ctx, domain.RoleEmployee)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrDefaultRoleNotFound
		}
		return nil, err
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:     in.Email,
		Password:  digest,
		Name:      in.Name,
		Firstname: in.Firstname,
		BirthDate: in.BirthDate,
		City:      in.City,
		Zipcode:   in.Zipcode,
		RoleID:    role.ID,
		Role:      role,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Remove deletes the account with the given id. The requester token is fully
// verified (signature and expiry) before its role claim is trusted; the
// embedded role must be "admin" and must carry the "delete" permission.
// Deleting an id that no longer exists succeeds.
func (s *UserService) Remove(ctx context.Context, id, rawToken string) error {
	claims, err := s.tokens.Decode(rawToken)
	if err != nil {
		metrics.UserDeletionsTotal.WithLabelValues("invalid_token").Inc()
		return err
	}
	if !claims.IsAdmin() {
		metrics.UserDeletionsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrNotAdmin
	}
	if !claims.Role.HasPermission(domain.PermissionDelete) {
		metrics.UserDeletionsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrPermissionDenied
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		metrics.UserDeletionsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.UserDeletionsTotal.WithLabelValues("deleted").Inc()
	s.log.Info().Str("user_id", id).Str("requester", claims.UserID()).Msg("user removed")
	return nil
}
