// Package controllers holds the gin handlers of the REST API. Handlers talk
// to narrow store interfaces so each resource can be tested against an
// in-memory fake.
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops-backend/forms"
	"hotelops-backend/logger"
	"hotelops-backend/middleware"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

// ImageStore persists uploaded images and returns their public path.
type ImageStore interface {
	SaveUpload(fh *multipart.FileHeader, subdir string) (string, error)
	SaveBase64Image(b64 string, subdir string) (string, error)
	Remove(stored string)
}

const maxMultipartMemory = 32 << 20

// respondError translates a service error into the JSON envelope. Unknown
// errors are logged and reported as 500 without leaking details.
func respondError(c *gin.Context, err error) {
	var fe forms.FieldErrors
	switch {
	case errors.As(err, &fe):
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "Validation failed", fe)
	case errors.Is(err, forms.ErrReadOnly), errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		logger.FromGin(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// paramID reads a positive numeric path parameter. It writes a 400 and
// returns false when the value is not usable.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

func queryUint(c *gin.Context, name string) *uint {
	n, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}

// queryDate parses an optional YYYY-MM-DD query value.
func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(forms.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", services.ErrInvalidInput, name)
	}
	return &t, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindForm decodes the request into dst. JSON bodies are decoded directly;
// multipart bodies carry the JSON document in the "data" field next to the
// file parts. dst keeps any values it already holds for absent fields.
func bindForm(c *gin.Context, dst interface{}) error {
	if isMultipart(c) {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return fmt.Errorf("%w: invalid multipart body", services.ErrInvalidInput)
		}
		raw := c.Request.FormValue("data")
		if raw == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return fmt.Errorf("%w: invalid data field: %v", services.ErrInvalidInput, err)
		}
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload: %v", services.ErrInvalidInput, err)
	}
	return nil
}

// formFiles returns the uploaded files under field, or nil for non-multipart
// requests.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	if c.Request.MultipartForm == nil {
		return nil
	}
	return c.Request.MultipartForm.File[field]
}

func formFile(c *gin.Context, field string) *multipart.FileHeader {
	files := formFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// uploads tracks the images written while handling one request so they can
// be rolled back when the request fails.
type uploads struct {
	images ImageStore
	subdir string
	saved  []string
}

func newUploads(images ImageStore, subdir string) *uploads {
	return &uploads{images: images, subdir: subdir}
}

// inline writes a data URL to disk. Any other value is an already stored
// path and is returned unchanged.
func (u *uploads) inline(value string) (string, error) {
	if !services.IsDataURL(value) {
		return value, nil
	}
	p, err := u.images.SaveBase64Image(value, u.subdir)
	if err != nil {
		return "", err
	}
	u.saved = append(u.saved, p)
	return p, nil
}

func (u *uploads) file(fh *multipart.FileHeader) (string, error) {
	p, err := u.images.SaveUpload(fh, u.subdir)
	if err != nil {
		return "", err
	}
	u.saved = append(u.saved, p)
	return p, nil
}

func (u *uploads) rollback() {
	for _, p := range u.saved {
		u.images.Remove(p)
	}
	u.saved = nil
}

// removeReplaced deletes the previous images that are no longer referenced.
func removeReplaced(images ImageStore, previous, current []string) {
	kept := make(map[string]bool, len(current))
	for _, p := range current {
		kept[p] = true
	}
	for _, p := range previous {
		if p != "" && !kept[p] {
			images.Remove(p)
		}
	}
}

func userID(c *gin.Context) uint {
	if claims := middleware.ClaimsFrom(c); claims != nil {
		return claims.UserID
	}
	return 0
}
