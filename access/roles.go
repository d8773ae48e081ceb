package access

import "strings"

// Role is one of the closed set of account roles.
type Role string

const (
	RoleSuperAdmin      Role = "super_admin"
	RoleAdmin           Role = "admin"
	RoleManager         Role = "manager"
	RoleStaff           Role = "staff"
	RoleOwner           Role = "owner"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleUser            Role = "user"
)

var allRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleStaff,
	RoleOwner,
	RoleRestaurantOwner,
	RoleUser,
}

// Roles returns every known role.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole normalizes raw and reports whether it names a known role.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range allRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is exactly one of the known roles.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
