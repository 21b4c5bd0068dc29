package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

type stubRoleRepo struct {
	roles []domain.Role
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for i := range r.roles {
		if r.roles[i].Name == name {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	return r.roles, nil
}

func (r *stubRoleRepo) Insert(_ context.Context, role *domain.Role) (*domain.Role, error) {
	created := *role
	created.ID = "role-" + role.Name
	r.roles = append(r.roles, created)
	return &created, nil
}

func (r *stubRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

type stubRoleCache struct {
	entries map[string]*domain.Role
	getErr  error
	gets    int
	sets    int
}

func newStubRoleCache() *stubRoleCache {
	return &stubRoleCache{entries: map[string]*domain.Role{}}
}

func (c *stubRoleCache) Get(_ context.Context, name string) (*domain.Role, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[name], nil
}

func (c *stubRoleCache) Set(_ context.Context, role *domain.Role) error {
	c.sets++
	c.entries[role.Name] = role
	return nil
}

func TestRoleService_Seed_Idempotent(t *testing.T) {
	repo := &stubRoleRepo{}
	svc := NewRoleService(repo, nil, zerolog.Nop())

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if len(repo.roles) != 2 {
		t.Fatalf("expected exactly 2 roles after double seed, got %d", len(repo.roles))
	}

	employee, err := svc.FindByName(context.Background(), domain.RoleEmployee)
	if err != nil {
		t.Fatalf("employee role missing: %v", err)
	}
	if len(employee.Permissions) != 1 || employee.Permissions[0] != domain.PermissionRead {
		t.Fatalf("unexpected employee permissions: %v", employee.Permissions)
	}

	admin, err := svc.FindByName(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin role missing: %v", err)
	}
	if !admin.HasPermission(domain.PermissionDelete) || !admin.HasPermission(domain.PermissionAdmin) {
		t.Fatalf("unexpected admin permissions: %v", admin.Permissions)
	}
}

func TestRoleService_FindByName_CacheHit(t *testing.T) {
	repo := &stubRoleRepo{}
	cache := newStubRoleCache()
	cache.entries["admin"] = &domain.Role{ID: "cached", Name: "admin", Permissions: []string{"read"}}
	svc := NewRoleService(repo, cache, zerolog.Nop())

	role, err := svc.FindByName(context.Background(), "admin")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if role.ID != "cached" {
		t.Fatalf("expected cached role, got %+v", role)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit should not write back")
	}
}

func TestRoleService_FindByName_CacheMissPopulates(t *testing.T) {
	repo := &stubRoleRepo{}
	if err := NewRoleService(repo, nil, zerolog.Nop()).Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	cache := newStubRoleCache()
	svc := NewRoleService(repo, cache, zerolog.Nop())

	role, err := svc.FindByName(context.Background(), domain.RoleEmployee)
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if role.Name != domain.RoleEmployee {
		t.Fatalf("unexpected role: %+v", role)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}

func TestRoleService_FindByName_CacheErrorFallsBack(t *testing.T) {
	repo := &stubRoleRepo{}
	if err := NewRoleService(repo, nil, zerolog.Nop()).Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	cache := newStubRoleCache()
	cache.getErr = errors.New("redis down")
	svc := NewRoleService(repo, cache, zerolog.Nop())

	role, err := svc.FindByName(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("cache failure must not fail the lookup: %v", err)
	}
	if role.Name != domain.RoleAdmin {
		t.Fatalf("unexpected role: %+v", role)
	}
}

func TestRoleService_FindByName_Unknown(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{}, nil, zerolog.Nop())
	if _, err := svc.FindByName(context.Background(), "ghost"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
