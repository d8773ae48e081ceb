package access

import (
	"sort"
	"strings"
)

// Permission keys are "<module>.<action>".
const (
	PermHotelsView        = "hotels.view"
	PermHotelsManage      = "hotels.manage"
	PermRoomsView         = "rooms.view"
	PermRoomsManage       = "rooms.manage"
	PermRoomsStatus       = "rooms.editStatus"
	PermStaffView         = "staff.view"
	PermStaffManage       = "staff.manage"
	PermStaffExport       = "staff.export"
	PermDepartmentsManage = "departments.manage"
	PermAttendanceView    = "attendance.view"
	PermAttendanceManage  = "attendance.manage"
	PermPermissionsManage = "permissions.manage"
	PermOrdersView        = "orders.view"
	PermOrdersManage      = "orders.manage"
	PermKitchenView       = "kitchen.view"
	PermKitchenUpdate     = "kitchen.update"
	PermDashboardView     = "dashboard.view"
)

// ActionsByModule lists every action per permission module. Permission
// matrices returned to clients are built from it.
var ActionsByModule = map[string][]string{
	"hotels":      {"view", "manage"},
	"rooms":       {"view", "manage", "editStatus"},
	"staff":       {"view", "manage", "export"},
	"departments": {"manage"},
	"attendance":  {"view", "manage"},
	"permissions": {"manage"},
	"orders":      {"view", "manage"},
	"kitchen":     {"view", "update"},
	"dashboard":   {"view"},
}

var rolePermissions = map[Role][]string{
	RoleAdmin: {
		PermHotelsView, PermHotelsManage, PermRoomsView, PermRoomsManage, PermRoomsStatus,
		PermStaffView, PermStaffManage, PermStaffExport, PermDepartmentsManage,
		PermAttendanceView, PermAttendanceManage, PermPermissionsManage,
		PermOrdersView, PermOrdersManage, PermKitchenView, PermKitchenUpdate, PermDashboardView,
	},
	RoleOwner: {
		PermHotelsView, PermHotelsManage, PermRoomsView, PermRoomsManage, PermRoomsStatus,
		PermStaffView, PermStaffManage, PermStaffExport, PermDepartmentsManage,
		PermAttendanceView, PermAttendanceManage, PermPermissionsManage,
		PermOrdersView, PermKitchenView, PermDashboardView,
	},
	RoleManager: {
		PermHotelsView, PermRoomsView, PermRoomsManage, PermRoomsStatus,
		PermStaffView, PermStaffManage, PermStaffExport, PermDepartmentsManage,
		PermAttendanceView, PermAttendanceManage,
		PermOrdersView, PermOrdersManage, PermKitchenView, PermKitchenUpdate, PermDashboardView,
	},
	RoleRestaurantOwner: {
		PermStaffView, PermStaffManage, PermStaffExport, PermDepartmentsManage,
		PermAttendanceView, PermAttendanceManage,
		PermOrdersView, PermOrdersManage, PermKitchenView, PermKitchenUpdate, PermDashboardView,
	},
	RoleStaff: {
		PermRoomsView, PermRoomsStatus, PermAttendanceView,
		PermOrdersView, PermKitchenView, PermKitchenUpdate,
	},
	RoleUser: {},
}

// PermissionsFor returns the sorted permission set granted to a role.
// super_admin holds every permission.
func PermissionsFor(r Role) []string {
	if r == RoleSuperAdmin {
		return AllPermissions()
	}
	perms := append([]string(nil), rolePermissions[r]...)
	sort.Strings(perms)
	return perms
}

// HasPermission reports whether role r holds perm.
func HasPermission(r Role, perm string) bool {
	for _, p := range PermissionsFor(r) {
		if p == perm {
			return true
		}
	}
	return false
}

// AllPermissions returns every "<module>.<action>" key, sorted.
func AllPermissions() []string {
	var out []string
	for module, actions := range ActionsByModule {
		for _, a := range actions {
			out = append(out, module+"."+a)
		}
	}
	sort.Strings(out)
	return out
}

// ValidPermission reports whether key is a known "<module>.<action>".
func ValidPermission(key string) bool {
	module, action, ok := strings.Cut(key, ".")
	if !ok {
		return false
	}
	for _, a := range ActionsByModule[module] {
		if a == action {
			return true
		}
	}
	return false
}

// PermissionMatrix expands a flat permission list into module -> action -> granted,
// with every known action present.
func PermissionMatrix(granted []string) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(ActionsByModule))
	for module, actions := range ActionsByModule {
		out[module] = make(map[string]bool, len(actions))
		for _, a := range actions {
			out[module][a] = false
		}
	}
	for _, p := range granted {
		module, action, ok := strings.Cut(p, ".")
		if !ok {
			continue
		}
		if _, known := out[module]; !known {
			continue
		}
		out[module][action] = true
	}
	return out
}

var designationDefaults = map[string][]string{
	"manager": {
		PermRoomsView, PermRoomsManage, PermRoomsStatus, PermStaffView, PermStaffManage,
		PermAttendanceView, PermAttendanceManage, PermOrdersView, PermOrdersManage, PermDashboardView,
	},
	"receptionist": {PermRoomsView, PermRoomsStatus, PermAttendanceView},
	"housekeeper":  {PermRoomsView, PermRoomsStatus},
	"chef":         {PermOrdersView, PermKitchenView, PermKitchenUpdate},
	"cook":         {PermOrdersView, PermKitchenView, PermKitchenUpdate},
	"waiter":       {PermOrdersView, PermOrdersManage, PermKitchenView},
	"cashier":      {PermOrdersView, PermOrdersManage},
	"accountant":   {PermStaffView, PermStaffExport, PermAttendanceView, PermDashboardView},
	"maintenance":  {PermRoomsView, PermRoomsStatus},
}

// DesignationDefaults returns the preset permissions of a job title,
// matched case-insensitively. Unknown titles get an empty set.
func DesignationDefaults(designation string) []string {
	perms := append([]string{}, designationDefaults[strings.ToLower(strings.TrimSpace(designation))]...)
	sort.Strings(perms)
	return perms
}
