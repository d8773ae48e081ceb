package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/controllers"
	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/services"
)

type mockUserStore struct {
	users     map[uint]models.User
	passwords map[uint]string
	staff     map[uint]bool
	nextID    uint
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		users: map[uint]models.User{
			1: {ID: 1, Name: "Root", Email: "root@hotel.test", Role: access.RoleSuperAdmin},
			2: {ID: 2, Name: "Ada", Email: "ada@hotel.test", Role: access.RoleAdmin},
		},
		passwords: map[uint]string{},
		staff:     map[uint]bool{10: true, 11: true},
		nextID:    3,
	}
}

func (m *mockUserStore) List(_ context.Context, role access.Role) ([]models.User, error) {
	var out []models.User
	for id := uint(1); id < m.nextID; id++ {
		u, ok := m.users[id]
		if ok && (role == "" || u.Role == role) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserStore) Get(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("find user: %w", services.ErrNotFound)
	}
	return &u, nil
}

func (m *mockUserStore) check(u *models.User) error {
	for _, other := range m.users {
		if other.ID != u.ID && other.Email == u.Email {
			return forms.FieldErrors{"email": "Email is already registered"}
		}
	}
	if u.StaffID != nil && !m.staff[*u.StaffID] {
		return forms.FieldErrors{"staff_id": "Staff member not found"}
	}
	return nil
}

func (m *mockUserStore) Create(_ context.Context, u *models.User, password string) error {
	if err := m.check(u); err != nil {
		return err
	}
	u.ID = m.nextID
	m.nextID++
	u.PasswordHash = "hashed:" + password
	m.users[u.ID] = *u
	m.passwords[u.ID] = password
	return nil
}

func (m *mockUserStore) Update(_ context.Context, u *models.User, password string) error {
	if err := m.check(u); err != nil {
		return err
	}
	if password != "" {
		m.passwords[u.ID] = password
	}
	m.users[u.ID] = *u
	return nil
}

func (m *mockUserStore) Delete(_ context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("delete user: %w", services.ErrNotFound)
	}
	delete(m.users, id)
	return nil
}

func setupUserRouter(store *mockUserStore) *gin.Engine {
	uc := controllers.NewUserController(store)
	return newRouter(func(g *gin.RouterGroup) {
		g.GET("/users", uc.GetUsers)
		g.POST("/users", uc.CreateUser)
		g.GET("/users/:id", uc.GetUser)
		g.PUT("/users/:id", uc.UpdateUser)
		g.DELETE("/users/:id", uc.DeleteUser)
	})
}

func TestCreateUser_WithRoleAndStaffLink(t *testing.T) {
	store := newMockUserStore()
	r := setupUserRouter(store)
	admin := tokenFor(t, 2, access.RoleAdmin, nil)

	rr := doRequest(t, r, http.MethodPost, "/api/users", admin, map[string]interface{}{
		"name":     "Maya",
		"email":    " Maya@Hotel.test ",
		"password": "kitchen-pass",
		"role":     "Restaurant_Owner",
		"staff_id": 10,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "kitchen-pass") || strings.Contains(rr.Body.String(), "hashed:") {
		t.Errorf("password leaked in response: %s", rr.Body.String())
	}
	var user models.User
	decodeData(t, rr, &user)
	if user.Role != access.RoleRestaurantOwner || user.Email != "maya@hotel.test" {
		t.Errorf("user: got role %q email %q", user.Role, user.Email)
	}
	if user.StaffID == nil || *user.StaffID != 10 {
		t.Errorf("staff link: got %v, want 10", user.StaffID)
	}
	if store.passwords[user.ID] != "kitchen-pass" {
		t.Errorf("password not handed to the store")
	}

	rr = doRequest(t, r, http.MethodGet, "/api/users?role=restaurant_owner", admin, nil)
	var users []models.User
	decodeData(t, rr, &users)
	if len(users) != 1 || users[0].ID != user.ID {
		t.Errorf("role filter: got %+v", users)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	store := newMockUserStore()
	r := setupUserRouter(store)
	admin := tokenFor(t, 2, access.RoleAdmin, nil)

	tests := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{"unknown role", map[string]interface{}{"name": "X", "email": "x@hotel.test", "password": "long-enough", "role": "cleaner"}, "role"},
		{"short password", map[string]interface{}{"name": "X", "email": "x@hotel.test", "password": "short"}, "password"},
		{"duplicate email", map[string]interface{}{"name": "X", "email": "ada@hotel.test", "password": "long-enough"}, "email"},
		{"missing staff", map[string]interface{}{"name": "X", "email": "x@hotel.test", "password": "long-enough", "staff_id": 99}, "staff_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, r, http.MethodPost, "/api/users", admin, tt.body)
			if rr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status: got %d, want 422 (%s)", rr.Code, rr.Body.String())
			}
			if decode(t, rr).Errors[tt.field] == "" {
				t.Errorf("expected error on %s, got %s", tt.field, rr.Body.String())
			}
		})
	}
	if len(store.users) != 2 {
		t.Errorf("invalid requests created users: %d", len(store.users))
	}

	if rr := doRequest(t, r, http.MethodGet, "/api/users?role=cleaner", admin, nil); rr.Code != http.StatusBadRequest {
		t.Errorf("unknown role filter: got %d, want 400", rr.Code)
	}
}

func TestUsers_SuperAdminAccountsNeedSuperAdmin(t *testing.T) {
	store := newMockUserStore()
	r := setupUserRouter(store)
	admin := tokenFor(t, 2, access.RoleAdmin, nil)
	root := tokenFor(t, 1, access.RoleSuperAdmin, nil)

	body := map[string]interface{}{"name": "Eve", "email": "eve@hotel.test", "password": "long-enough", "role": "super_admin"}
	if rr := doRequest(t, r, http.MethodPost, "/api/users", admin, body); rr.Code != http.StatusForbidden {
		t.Errorf("admin granting super_admin: got %d, want 403", rr.Code)
	}
	if rr := doRequest(t, r, http.MethodPut, "/api/users/1", admin, map[string]string{"role": "staff"}); rr.Code != http.StatusForbidden {
		t.Errorf("admin editing super_admin: got %d, want 403", rr.Code)
	}
	if rr := doRequest(t, r, http.MethodDelete, "/api/users/1", admin, nil); rr.Code != http.StatusForbidden {
		t.Errorf("admin deleting super_admin: got %d, want 403", rr.Code)
	}
	if store.users[1].Role != access.RoleSuperAdmin {
		t.Fatalf("super admin account changed: %+v", store.users[1])
	}

	if rr := doRequest(t, r, http.MethodPost, "/api/users", root, body); rr.Code != http.StatusCreated {
		t.Errorf("super_admin granting super_admin: got %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
}

func TestUpdateUser_RoleAndStaffLink(t *testing.T) {
	store := newMockUserStore()
	store.users[3] = models.User{ID: 3, Name: "Sam", Email: "sam@hotel.test", Role: access.RoleUser}
	store.nextID = 4
	r := setupUserRouter(store)
	admin := tokenFor(t, 2, access.RoleAdmin, nil)

	rr := doRequest(t, r, http.MethodPut, "/api/users/3", admin, map[string]interface{}{"role": "staff", "staff_id": 11})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rr.Code, rr.Body.String())
	}
	got := store.users[3]
	if got.Role != access.RoleStaff || got.StaffID == nil || *got.StaffID != 11 {
		t.Errorf("updated user: %+v", got)
	}
	if got.Name != "Sam" || got.Email != "sam@hotel.test" {
		t.Errorf("absent fields should be kept: %+v", got)
	}
	if _, changed := store.passwords[3]; changed {
		t.Error("empty password should keep the stored hash")
	}

	rr = doRequest(t, r, http.MethodPut, "/api/users/3", admin, map[string]interface{}{"staff_id": nil})
	if rr.Code != http.StatusOK || store.users[3].StaffID != nil {
		t.Errorf("unlink staff: got %d, staff %v", rr.Code, store.users[3].StaffID)
	}

	if rr := doRequest(t, r, http.MethodPut, "/api/users/2", admin, map[string]string{"role": "staff"}); rr.Code != http.StatusBadRequest {
		t.Errorf("own role change: got %d, want 400", rr.Code)
	}
	if rr := doRequest(t, r, http.MethodPut, "/api/users/99", admin, map[string]string{"role": "staff"}); rr.Code != http.StatusNotFound {
		t.Errorf("missing user: got %d, want 404", rr.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	store := newMockUserStore()
	store.users[3] = models.User{ID: 3, Name: "Sam", Email: "sam@hotel.test", Role: access.RoleStaff}
	store.nextID = 4
	r := setupUserRouter(store)
	admin := tokenFor(t, 2, access.RoleAdmin, nil)

	if rr := doRequest(t, r, http.MethodDelete, "/api/users/2", admin, nil); rr.Code != http.StatusBadRequest {
		t.Errorf("self delete: got %d, want 400", rr.Code)
	}
	if rr := doRequest(t, r, http.MethodDelete, "/api/users/3", admin, nil); rr.Code != http.StatusOK {
		t.Errorf("delete: got %d, want 200", rr.Code)
	}
	if _, ok := store.users[3]; ok {
		t.Error("user should be gone")
	}
	if rr := doRequest(t, r, http.MethodDelete, "/api/users/3", admin, nil); rr.Code != http.StatusNotFound {
		t.Errorf("delete again: got %d, want 404", rr.Code)
	}
}
