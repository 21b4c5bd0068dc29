package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

// RoleService wraps the role repository with the startup seed and an
// optional read-through cache.
type RoleService struct {
	repo  ports.RoleRepository
	cache ports.RoleCache
	log   zerolog.Logger
}

// NewRoleService builds a RoleService. cache may be nil to disable caching.
func NewRoleService(repo ports.RoleRepository, cache ports.RoleCache, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, cache: cache, log: log}
}

// Seed inserts the default "employee" and "admin" roles when the collection
// is empty. Running it again is a no-op.
func (s *RoleService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("roles already exist, skipping seed")
		return nil
	}

	s.log.Info().Msg("seeding default roles")
	for _, role := range domain.DefaultRoles() {
		role := role
		if _, err := s.repo.Insert(ctx, &role); err != nil {
			return err
		}
	}
	return nil
}

// FindByName resolves a role, consulting the cache first. Cache failures are
// logged and fall through to the repository.
func (s *RoleService) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, name)
		if err != nil {
			s.log.Debug().Err(err).Str("role", name).Msg("role cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	role, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, role); err != nil {
			s.log.Debug().Err(err).Str("role", name).Msg("role cache write failed")
		}
	}
	return role, nil
}

func (s *RoleService) FindAll(ctx context.Context) ([]domain.Role, error) {
	return s.repo.FindAll(ctx)
}
