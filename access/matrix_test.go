package access_test

import (
	"testing"

	"hotelops-backend/access"
)

func TestAllow_AlwaysIncludesSuperAdminOnce(t *testing.T) {
	roles := access.Allow(access.RoleAdmin, access.RoleSuperAdmin, access.RoleAdmin)
	if len(roles) != 2 {
		t.Fatalf("len: got %d, want 2 (%v)", len(roles), roles)
	}
	if roles[0] != access.RoleSuperAdmin || roles[1] != access.RoleAdmin {
		t.Errorf("roles: got %v", roles)
	}
}

func TestMatrix_Lookup(t *testing.T) {
	m := access.DefaultMatrix()

	tests := []struct {
		path    string
		area    string
		guarded bool
	}{
		{"/admin", "admin", true},
		{"/admin/hotels/12/edit", "admin", true},
		{"/manager/orders", "manager", true},
		{"/restaurant/kitchen", "restaurant", true},
		{"/owner", "owner", true},
		{"/staff", "staff", true},
		{"/super-admin/users", "super_admin", true},
		{"/administrator", "", false},
		{"/login", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		area, ok := m.Lookup(tt.path)
		if ok != tt.guarded {
			t.Errorf("%s: guarded got %v, want %v", tt.path, ok, tt.guarded)
			continue
		}
		if ok && area.Name != tt.area {
			t.Errorf("%s: area got %s, want %s", tt.path, area.Name, tt.area)
		}
	}
}

func TestMatrix_SuperAdminReachesEveryArea(t *testing.T) {
	state := access.GateState{IsAuthenticated: true, Role: access.RoleSuperAdmin}
	for _, area := range access.DefaultMatrix().Areas() {
		if d := access.Decide(state, area.Roles); d.Outcome != access.OutcomeRender {
			t.Errorf("area %s: got %s", area.Name, d.Outcome)
		}
	}
}

func TestMatrix_StaffCannotEnterAdmin(t *testing.T) {
	area, _ := access.DefaultMatrix().Lookup("/admin/staff")
	d := access.Decide(access.GateState{IsAuthenticated: true, Role: access.RoleStaff}, area.Roles)
	if d.Outcome != access.OutcomeRedirectUnauthorized {
		t.Fatalf("got %s", d.Outcome)
	}
}

func TestMatrix_Check(t *testing.T) {
	m := access.DefaultMatrix()
	g := access.NewGate("/signin", "")
	manager := access.GateState{IsAuthenticated: true, Role: access.RoleManager}

	got := m.Check(g, "/manager/rooms", manager)
	if got.Area != "manager" || got.Decision.Outcome != access.OutcomeRender {
		t.Errorf("manager area: got %+v", got)
	}

	got = m.Check(g, "/owner", manager)
	if got.Decision.Outcome != access.OutcomeRedirectUnauthorized || got.Decision.Redirect != access.DefaultUnauthorizedPath {
		t.Errorf("owner area: got %+v", got)
	}

	got = m.Check(g, "/staff", access.GateState{})
	if got.Decision.Outcome != access.OutcomeRedirectLogin || got.Decision.Redirect != "/signin" {
		t.Errorf("anonymous: got %+v", got)
	}

	got = m.Check(g, "/", access.GateState{})
	if got.Area != "" || got.Decision.Outcome != access.OutcomeRender {
		t.Errorf("unguarded: got %+v", got)
	}
}
