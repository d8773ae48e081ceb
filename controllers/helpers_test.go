package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/middleware"
	"hotelops-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testTokens = services.NewTokenService("controller-test-secret", time.Hour, nil)

func tokenFor(t *testing.T, userID uint, role access.Role, staffID *uint) string {
	t.Helper()
	token, err := testTokens.Generate(userID, role, staffID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// newRouter mounts routes under an authenticated /api group.
func newRouter(register func(g *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	register(r.Group("/api", middleware.Authenticate(testTokens)))
	return r
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type filePart struct {
	field, name string
	content     []byte
}

func doMultipart(t *testing.T, h http.Handler, method, path, token string, data interface{}, files ...filePart) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("marshal data: %v", err)
		}
		if err := w.WriteField("data", string(b)); err != nil {
			t.Fatalf("write data field: %v", err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(f.content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	env := decode(t, rr)
	if !env.Success {
		t.Fatalf("expected success, got error %q (status %d)", env.Error, rr.Code)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

// fakeImages records stored and removed paths instead of touching disk.
type fakeImages struct {
	n       int
	saved   []string
	removed []string
}

func (f *fakeImages) store(subdir, name string) string {
	f.n++
	p := fmt.Sprintf("/uploads/%s/%d-%s", subdir, f.n, name)
	f.saved = append(f.saved, p)
	return p
}

func (f *fakeImages) SaveUpload(fh *multipart.FileHeader, subdir string) (string, error) {
	return f.store(subdir, fh.Filename), nil
}

func (f *fakeImages) SaveBase64Image(_ string, subdir string) (string, error) {
	return f.store(subdir, "inline.png"), nil
}

func (f *fakeImages) Remove(stored string) {
	f.removed = append(f.removed, stored)
}

func uintPtr(v uint) *uint { return &v }

func middlewareAuth() gin.HandlerFunc {
	return middleware.Authenticate(testTokens)
}
