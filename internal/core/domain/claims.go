package domain

import "github.com/golang-jwt/jwt/v5"

// RoleClaim is the role snapshot embedded in a token at issuance time.
// Permission changes after issuance do not affect already-issued tokens.
type RoleClaim struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the snapshot carries the given permission.
func (r RoleClaim) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// TokenClaims is the JWT payload: the authenticated identity plus its role
// snapshot. The account identifier travels in the registered "sub" claim.
type TokenClaims struct {
	jwt.RegisteredClaims
	Name      string    `json:"name,omitempty"`
	Firstname string    `json:"firstname,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      RoleClaim `json:"role"`
}

// UserID returns the account identifier carried in the subject claim.
func (c *TokenClaims) UserID() string {
	return c.Subject
}

// IsAdmin reports whether the embedded role is the admin role.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role.Name == RoleAdmin
}

// NewRoleClaim copies a role into an immutable snapshot.
func NewRoleClaim(role *Role) RoleClaim {
	if role == nil {
		return RoleClaim{}
	}
	permissions := make([]string, len(role.Permissions))
	copy(permissions, role.Permissions)
	return RoleClaim{Name: role.Name, Permissions: permissions}
}
