package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/forms"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

type DepartmentStore interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id uint) (*models.Department, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id uint) error
}

type DepartmentController struct {
	Departments DepartmentStore
}

func NewDepartmentController(store DepartmentStore) *DepartmentController {
	return &DepartmentController{Departments: store}
}

// GET /api/departments
func (dc *DepartmentController) GetDepartments(c *gin.Context) {
	departments, err := dc.Departments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, departments)
}

// GET /api/departments/:id
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := dc.Departments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, d)
}

// POST /api/departments
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	form := forms.NewDepartmentForm()
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	form.Prepare(forms.ModeAdd)
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	d := form.Model()
	if err := dc.Departments.Create(c.Request.Context(), &d); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, d)
}

// PUT /api/departments/:id
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := dc.Departments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateDepartment(*d)
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	form.Prepare(forms.ModeEdit)
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	form.Apply(d)
	if err := dc.Departments.Update(c.Request.Context(), d); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, d)
}

// DELETE /api/departments/:id
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := dc.Departments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Department deleted successfully"})
}
