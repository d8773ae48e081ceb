package access_test

import (
	"testing"

	"hotelops-backend/access"
)

func TestPermissionsFor_SuperAdminHasEverything(t *testing.T) {
	got := access.PermissionsFor(access.RoleSuperAdmin)
	if len(got) != len(access.AllPermissions()) {
		t.Fatalf("got %d permissions, want %d", len(got), len(access.AllPermissions()))
	}
}

func TestHasPermission(t *testing.T) {
	if !access.HasPermission(access.RoleStaff, access.PermKitchenUpdate) {
		t.Error("staff should update kitchen tickets")
	}
	if access.HasPermission(access.RoleStaff, access.PermStaffManage) {
		t.Error("staff should not manage staff")
	}
	if access.HasPermission(access.RoleUser, access.PermHotelsView) {
		t.Error("user should hold no permissions")
	}
}

func TestValidPermission(t *testing.T) {
	for _, key := range access.AllPermissions() {
		if !access.ValidPermission(key) {
			t.Errorf("%s should be valid", key)
		}
	}
	for _, key := range []string{"", "hotels", "hotels.fly", "nope.view", ".view"} {
		if access.ValidPermission(key) {
			t.Errorf("%q should be invalid", key)
		}
	}
}

func TestPermissionMatrix(t *testing.T) {
	m := access.PermissionMatrix([]string{"rooms.editStatus", "bogus", "ghost.view"})
	if !m["rooms"]["editStatus"] {
		t.Error("rooms.editStatus should be granted")
	}
	if m["rooms"]["manage"] {
		t.Error("rooms.manage should not be granted")
	}
	if _, ok := m["ghost"]; ok {
		t.Error("unknown module should be dropped")
	}
	if len(m) != len(access.ActionsByModule) {
		t.Errorf("modules: got %d, want %d", len(m), len(access.ActionsByModule))
	}
}

func TestDesignationDefaults(t *testing.T) {
	got := access.DesignationDefaults("  Chef ")
	want := []string{access.PermKitchenUpdate, access.PermKitchenView, access.PermOrdersView}
	if len(got) != len(want) {
		t.Fatalf("chef: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chef[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
	for _, p := range got {
		if !access.ValidPermission(p) {
			t.Errorf("preset %s is not a known permission", p)
		}
	}

	if got := access.DesignationDefaults("astronaut"); got == nil || len(got) != 0 {
		t.Errorf("unknown designation: got %#v, want empty slice", got)
	}
}
