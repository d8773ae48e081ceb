package access

import (
	"sort"
	"strings"
)

// Area is a role-restricted section of the dashboard, identified by its
// path prefix.
type Area struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Roles  []Role `json:"roles"`
}

// Allow builds an allowed-role list that always includes super_admin.
// Every guarded area and endpoint goes through here so the super admin
// grant cannot drift between call sites.
func Allow(roles ...Role) []Role {
	out := []Role{RoleSuperAdmin}
	for _, r := range roles {
		if r != RoleSuperAdmin && !contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// Role groups used by the API routes.
var (
	HotelManagers      = Allow(RoleAdmin, RoleOwner)
	RoomManagers       = Allow(RoleAdmin, RoleOwner, RoleManager)
	RoomStatusEditors  = Allow(RoleAdmin, RoleOwner, RoleManager, RoleStaff)
	PeopleManagers     = Allow(RoleAdmin, RoleManager, RoleOwner, RoleRestaurantOwner)
	AttendanceReaders  = Allow(RoleAdmin, RoleManager, RoleOwner, RoleRestaurantOwner, RoleStaff)
	PermissionManagers = Allow(RoleAdmin, RoleOwner)
	OrderManagers      = Allow(RoleAdmin, RoleManager, RoleOwner, RoleRestaurantOwner)
	KitchenUsers       = Allow(RoleAdmin, RoleManager, RoleOwner, RoleRestaurantOwner, RoleStaff)
	DashboardViewers   = Allow(RoleAdmin, RoleManager, RoleOwner, RoleRestaurantOwner)
	UserManagers       = Allow(RoleAdmin)
)

// Matrix maps dashboard paths to their allowed roles.
type Matrix struct {
	areas []Area
}

// DefaultMatrix returns the dashboard areas of the web app.
func DefaultMatrix() *Matrix {
	return NewMatrix(
		Area{Name: "super_admin", Prefix: "/super-admin", Roles: Allow()},
		Area{Name: "admin", Prefix: "/admin", Roles: Allow(RoleAdmin)},
		Area{Name: "manager", Prefix: "/manager", Roles: Allow(RoleManager)},
		Area{Name: "restaurant", Prefix: "/restaurant", Roles: Allow(RoleRestaurantOwner)},
		Area{Name: "owner", Prefix: "/owner", Roles: Allow(RoleOwner)},
		Area{Name: "staff", Prefix: "/staff", Roles: Allow(RoleStaff)},
		Area{Name: "profile", Prefix: "/profile", Roles: nil},
	)
}

func NewMatrix(areas ...Area) *Matrix {
	m := &Matrix{areas: append([]Area(nil), areas...)}
	// longest prefix first so nested areas win
	sort.SliceStable(m.areas, func(i, j int) bool {
		return len(m.areas[i].Prefix) > len(m.areas[j].Prefix)
	})
	return m
}

// Lookup returns the area guarding path. ok is false for unguarded paths.
func (m *Matrix) Lookup(path string) (Area, bool) {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	for _, a := range m.areas {
		if path == a.Prefix || strings.HasPrefix(path, a.Prefix+"/") {
			return a, true
		}
	}
	return Area{}, false
}

// Areas returns the configured areas, longest prefix first.
func (m *Matrix) Areas() []Area {
	return append([]Area(nil), m.areas...)
}

// Check is the gate verdict for one dashboard path.
type Check struct {
	Path     string   `json:"path"`
	Area     string   `json:"area,omitempty"`
	Roles    []Role   `json:"roles,omitempty"`
	Decision Decision `json:"decision"`
}

// Check evaluates state against the area guarding path. Paths outside every
// area are not role-restricted and always render.
func (m *Matrix) Check(g Gate, path string, state GateState) Check {
	area, ok := m.Lookup(path)
	if !ok {
		return Check{Path: path, Decision: Decision{Outcome: OutcomeRender}}
	}
	return Check{
		Path:     path,
		Area:     area.Name,
		Roles:    area.Roles,
		Decision: g.Decide(state, area.Roles),
	}
}
