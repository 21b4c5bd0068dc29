package domain

// Role names known to the system. Both are seeded at startup when the role
// collection is empty.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Permission strings attached to roles. Authorization decisions are plain
// membership tests against these values.
const (
	PermissionRead   = "read"
	PermissionWrite  = "write"
	PermissionDelete = "delete"
	PermissionAdmin  = "admin"
)

// Role groups a named set of permission strings.
type Role struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the role carries the given permission.
func (r *Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// DefaultRoles returns the two roles seeded on first run: "employee" may only
// read, "admin" holds the full permission set.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleEmployee, Permissions: []string{PermissionRead}},
		{Name: RoleAdmin, Permissions: []string{PermissionRead, PermissionWrite, PermissionDelete, PermissionAdmin}},
	}
}
