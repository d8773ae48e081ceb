package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/session"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_LoginStoresTokenAndInjectsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			if r.Header.Get("Authorization") != "" {
				t.Errorf("login should not carry a token")
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"token": "jwt-1", "user": map[string]interface{}{"id": 1, "role": "admin"}},
			})
		case "/api/auth/me":
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"id": 1, "email": "a@b.co", "role": "admin"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	c := New(srv.URL+"/api", tokens)

	res, err := c.Login(context.Background(), "a@b.co", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "jwt-1" || res.User.Role != "admin" {
		t.Errorf("result: got %+v", res)
	}
	if tok, _ := tokens.Token(); tok != "jwt-1" {
		t.Errorf("stored token: got %q, want %q", tok, "jwt-1")
	}

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer jwt-1" {
		t.Errorf("Authorization: got %q, want %q", gotAuth, "Bearer jwt-1")
	}
}

func TestClient_FieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"success": false,
			"error":   "validation failed",
			"errors":  map[string]string{"code": "code already exists"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	_, err := c.CreateDepartment(context.Background(), forms.DepartmentForm{Name: "Kitchen"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type: got %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d", apiErr.Status)
	}
	if apiErr.FieldErrors["code"] != "code already exists" {
		t.Errorf("field errors: got %v", apiErr.FieldErrors)
	}

	// the server map merges into a local form error map
	local := forms.FieldErrors{"name": "Name is required"}
	local.Merge(apiErr.FieldErrors)
	if len(local) != 2 {
		t.Errorf("merged: got %v", local)
	}
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "token expired"})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	_ = tokens.SetToken("old")
	var reason string
	c := New(srv.URL, tokens, WithAuthFailure(func(r string) { reason = r }))

	if _, err := c.ListHotels(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if tok, _ := tokens.Token(); tok != "" {
		t.Errorf("token after 401: got %q, want empty", tok)
	}
	if reason != "token expired" {
		t.Errorf("auth failure reason: got %q", reason)
	}
}

func TestClient_SessionFollowsLoginAndExpiry(t *testing.T) {
	expired := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"token": "jwt-1", "user": map[string]interface{}{"id": 4, "role": "manager", "staff_id": 9}},
			})
		case "/api/dashboard/summary":
			if expired {
				writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "token expired"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": map[string]interface{}{}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	store := session.NewStore(tokens, access.NewGate(access.DefaultLoginPath, access.DefaultUnauthorizedPath))
	c := New(srv.URL+"/api", tokens, WithSession(store))

	if _, err := c.Login(context.Background(), "m@hotel.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	st := store.State()
	if !st.IsAuthenticated || st.Token != "jwt-1" || st.User == nil || st.User.Role != access.RoleManager {
		t.Fatalf("state after login: %+v", st)
	}
	if st.User.StaffID == nil || *st.User.StaffID != 9 {
		t.Errorf("staff id: got %v, want 9", st.User.StaffID)
	}
	if d := store.Gate(access.DashboardViewers); d.Outcome != access.OutcomeRender {
		t.Errorf("gate after login: got %q, want render", d.Outcome)
	}

	if _, err := c.DashboardSummary(context.Background()); err != nil {
		t.Fatalf("DashboardSummary: %v", err)
	}

	expired = true
	if _, err := c.DashboardSummary(context.Background()); err == nil {
		t.Fatal("expected 401 error")
	}
	st = store.State()
	if st.IsAuthenticated || st.Error != "token expired" {
		t.Errorf("state after 401: %+v", st)
	}
	if tok, _ := tokens.Token(); tok != "" {
		t.Errorf("token after 401: got %q, want empty", tok)
	}
	if d := store.Gate(access.DashboardViewers); d.Outcome != access.OutcomeRedirectLogin {
		t.Errorf("gate after 401: got %q, want redirect_login", d.Outcome)
	}
}

func TestClient_UserLoaderRestoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer saved" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "missing token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 2, "name": "Ada", "email": "ada@hotel.test", "role": "admin"},
		})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	_ = tokens.SetToken("saved")
	store := session.NewStore(tokens, access.NewGate("", ""))
	c := New(srv.URL, tokens, WithSession(store))

	st, err := store.Init(context.Background(), c.UserLoader())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !st.IsAuthenticated || st.Loading || st.User == nil || st.User.Email != "ada@hotel.test" {
		t.Errorf("restored state: %+v", st)
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if st := store.State(); st.IsAuthenticated || st.User != nil {
		t.Errorf("state after logout: %+v", st)
	}
}

func TestClient_CreateStaffMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type: got %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		var form forms.StaffForm
		if err := json.Unmarshal([]byte(r.FormValue("data")), &form); err != nil {
			t.Fatalf("data field: %v", err)
		}
		f, hdr, err := r.FormFile("profile_image")
		if err != nil {
			t.Fatalf("profile_image: %v", err)
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		if hdr.Filename != "me.png" || string(body) != "png-bytes" {
			t.Errorf("file: got %s %q", hdr.Filename, body)
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 9, "first_name": form.FirstName, "profile_image": "/uploads/x.png"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	staff, err := c.CreateStaff(context.Background(),
		forms.StaffForm{FirstName: "Anan", LastName: "S"},
		&File{Name: "me.png", Reader: strings.NewReader("png-bytes")})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if staff.ID != 9 || staff.FirstName != "Anan" {
		t.Errorf("staff: got %+v", staff)
	}
}

func TestClient_ListStaffQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "ana" || q.Get("department_id") != "3" || q.Get("page") != "2" {
			t.Errorf("query: got %s", r.URL.RawQuery)
		}
		if q.Has("status") {
			t.Errorf("empty status should not be sent")
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"items": []map[string]interface{}{{"id": 1}, {"id": 2}},
				"total": 12, "page": 2, "limit": 10,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	page, err := c.ListStaff(context.Background(), StaffQuery{Search: "ana", DepartmentID: 3, Page: 2})
	if err != nil {
		t.Fatalf("ListStaff: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 12 {
		t.Errorf("page: got %+v", page)
	}
}

func TestClient_CreateUserWithStaffLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Errorf("request: got %s %s", r.Method, r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["role"] != "manager" || body["staff_id"] != float64(5) {
			t.Errorf("body: got %v", body)
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 8, "role": "manager", "staff_id": 5},
		})
	}))
	defer srv.Close()

	staffID := uint(5)
	c := New(srv.URL, &MemoryTokenStore{})
	user, err := c.CreateUser(context.Background(), forms.UserForm{
		Name: "Mia", Email: "mia@hotel.test", Password: "long-enough", Role: "manager", StaffID: &staffID,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID != 8 || user.StaffID == nil || *user.StaffID != 5 {
		t.Errorf("user: got %+v", user)
	}
}

func TestClient_UpdateItemStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/orders/4/items/11/status" {
			t.Errorf("request: got %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["status"] != "prepared" {
			t.Errorf("body: got %v", in)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 4, "status": "prepared"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	order, err := c.UpdateItemStatus(context.Background(), 4, 11, models.ItemPrepared)
	if err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	if order.Status != models.OrderPrepared {
		t.Errorf("status: got %s", order.Status)
	}
}

func TestClient_ExportStaff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write([]byte("PK-xlsx"))
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	body, err := c.ExportStaff(context.Background(), StaffQuery{})
	if err != nil {
		t.Fatalf("ExportStaff: %v", err)
	}
	if string(body) != "PK-xlsx" {
		t.Errorf("body: got %q", body)
	}
}

func TestFileTokenStore(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "auth", "token"))

	if tok, err := store.Token(); err != nil || tok != "" {
		t.Fatalf("empty store: got %q, %v", tok, err)
	}
	if err := store.SetToken("persisted"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	reopened := NewFileTokenStore(store.Path)
	if tok, _ := reopened.Token(); tok != "persisted" {
		t.Errorf("reopened: got %q, want %q", tok, "persisted")
	}
	if err := reopened.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := reopened.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("after clear: got %q", tok)
	}
}
