package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

type PermissionStore interface {
	Get(ctx context.Context, staffID uint) (*models.PermissionSet, error)
	Set(ctx context.Context, staffID uint, perms []string) (*models.PermissionSet, error)
	Delete(ctx context.Context, staffID uint) error
	Defaults(designation string) []string
	Copy(ctx context.Context, from uint, to []uint) (int, error)
}

type PermissionController struct {
	Permissions PermissionStore
}

func NewPermissionController(store PermissionStore) *PermissionController {
	return &PermissionController{Permissions: store}
}

// GET /api/permissions/catalog
func (pc *PermissionController) GetCatalog(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"modules":     access.ActionsByModule,
		"permissions": access.AllPermissions(),
	})
}

// GET /api/permissions/:staffId
func (pc *PermissionController) GetPermissions(c *gin.Context) {
	staffID, ok := paramID(c, "staffId")
	if !ok {
		return
	}
	set, err := pc.Permissions.Get(c.Request.Context(), staffID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, set)
}

type setPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// POST /api/permissions/:staffId
func (pc *PermissionController) SetPermissions(c *gin.Context) {
	staffID, ok := paramID(c, "staffId")
	if !ok {
		return
	}
	var req setPermissionsRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	set, err := pc.Permissions.Set(c.Request.Context(), staffID, req.Permissions)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, set)
}

// DELETE /api/permissions/:staffId
func (pc *PermissionController) DeletePermissions(c *gin.Context) {
	staffID, ok := paramID(c, "staffId")
	if !ok {
		return
	}
	if err := pc.Permissions.Delete(c.Request.Context(), staffID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Permissions cleared"})
}

// GET /api/permissions/defaults/:designation
func (pc *PermissionController) GetDefaults(c *gin.Context) {
	designation := strings.TrimSpace(c.Param("designation"))
	perms := pc.Permissions.Defaults(designation)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"designation": designation,
		"permissions": perms,
		"matrix":      access.PermissionMatrix(perms),
	})
}

type copyPermissionsRequest struct {
	FromStaffID uint   `json:"from_staff_id"`
	ToStaffIDs  []uint `json:"to_staff_ids"`
}

// POST /api/permissions/copy
func (pc *PermissionController) CopyPermissions(c *gin.Context) {
	var req copyPermissionsRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	errs := forms.FieldErrors{}
	if req.FromStaffID == 0 {
		errs.Add("from_staff_id", "Source staff member is required")
	}
	if len(req.ToStaffIDs) == 0 {
		errs.Add("to_staff_ids", "Select at least one target staff member")
	}
	if err := errs.Err(); err != nil {
		respondError(c, err)
		return
	}

	copied, err := pc.Permissions.Copy(c.Request.Context(), req.FromStaffID, req.ToStaffIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Permissions copied", "copied": copied})
}
