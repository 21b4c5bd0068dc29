package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

const roleCacheTTL = 5 * time.Minute

// RoleCache is a read-through cache of role documents. Roles are immutable
// after seeding, so a short TTL is plenty.
// Key format: role:<name>
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role, or (nil, nil) on a miss.
func (c *RoleCache) Get(ctx context.Context, name string) (*domain.Role, error) {
	payload, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("role cache get: %w", err)
	}

	var role domain.Role
	if err := json.Unmarshal(payload, &role); err != nil {
		return nil, fmt.Errorf("role cache decode: %w", err)
	}
	return &role, nil
}

// Set stores the role under its name (expires after roleCacheTTL).
func (c *RoleCache) Set(ctx context.Context, role *domain.Role) error {
	payload, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("role cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(role.Name), payload, roleCacheTTL).Err()
}

func (c *RoleCache) key(name string) string {
	return "role:" + name
}
