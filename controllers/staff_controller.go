package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

const (
	staffUploadDir = "staff"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type StaffStore interface {
	List(ctx context.Context, f services.StaffFilter) ([]models.Staff, int64, error)
	All(ctx context.Context, f services.StaffFilter) ([]models.Staff, error)
	Get(ctx context.Context, id uint) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id uint) error
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type StaffController struct {
	Staff  StaffStore
	Images ImageStore
	Now    func() time.Time
}

func NewStaffController(staff StaffStore, images ImageStore) *StaffController {
	return &StaffController{Staff: staff, Images: images, Now: time.Now}
}

func staffFilter(c *gin.Context) services.StaffFilter {
	f := services.StaffFilter{
		Search: c.Query("search"),
		Status: models.StaffStatus(c.Query("status")),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if id := queryUint(c, "department_id"); id != nil {
		f.DepartmentID = *id
	}
	f.Normalize()
	return f
}

// GET /api/staff
func (sc *StaffController) GetStaffList(c *gin.Context) {
	f := staffFilter(c)
	staff, total, err := sc.Staff.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, staff, total, f.Page, f.Limit)
}

// GET /api/staff/:id
func (sc *StaffController) GetStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	staff, err := sc.Staff.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

// POST /api/staff
func (sc *StaffController) CreateStaff(c *gin.Context) {
	form := forms.NewStaffForm()
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	up := newUploads(sc.Images, staffUploadDir)
	if err := sc.storeProfileImage(c, up, &form); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}

	staff := form.Model()
	if err := sc.Staff.Create(c.Request.Context(), &staff); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, staff)
}

// PUT /api/staff/:id
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	staff, err := sc.Staff.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateStaff(*staff)
	previous := staff.ProfileImage
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	up := newUploads(sc.Images, staffUploadDir)
	if err := sc.storeProfileImage(c, up, &form); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}

	form.Apply(staff)
	if err := sc.Staff.Update(c.Request.Context(), staff); err != nil {
		up.rollback()
		respondError(c, err)
		return
	}
	removeReplaced(sc.Images, []string{previous}, []string{staff.ProfileImage})
	utils.JSONSuccess(c, http.StatusOK, staff)
}

// DELETE /api/staff/:id
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	staff, err := sc.Staff.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := sc.Staff.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	removeReplaced(sc.Images, []string{staff.ProfileImage}, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// DELETE /api/staff/bulk
func (sc *StaffController) BulkDeleteStaff(c *gin.Context) {
	var req bulkDeleteRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if len(req.IDs) == 0 {
		respondError(c, forms.FieldErrors{"ids": "Select at least one staff member"})
		return
	}
	n, err := sc.Staff.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": n})
}

// GET /api/staff/export
func (sc *StaffController) ExportStaff(c *gin.Context) {
	f := staffFilter(c)
	staff, err := sc.Staff.All(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := services.StaffWorkbook(staff)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("staff-%s.xlsx", sc.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxMIME, data)
}

// storeProfileImage lets an uploaded profile_image part win over the
// profile_image field of the form.
func (sc *StaffController) storeProfileImage(c *gin.Context, up *uploads, form *forms.StaffForm) error {
	var err error
	if fh := formFile(c, "profile_image"); fh != nil {
		form.ProfileImage, err = up.file(fh)
		return err
	}
	form.ProfileImage, err = up.inline(form.ProfileImage)
	return err
}
