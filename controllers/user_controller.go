package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/middleware"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type UserStore interface {
	List(ctx context.Context, role access.Role) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User, password string) error
	Update(ctx context.Context, user *models.User, password string) error
	Delete(ctx context.Context, id uint) error
}

type UserController struct {
	Users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{Users: users}
}

var errSuperAdminOnly = fmt.Errorf("%w: only a super admin can manage super admin accounts", services.ErrForbidden)

// canManage reports whether the caller may grant or touch role.
func canManage(c *gin.Context, role access.Role) bool {
	if role != access.RoleSuperAdmin {
		return true
	}
	claims := middleware.ClaimsFrom(c)
	return claims != nil && claims.Role == access.RoleSuperAdmin
}

func callerID(c *gin.Context) uint {
	if claims := middleware.ClaimsFrom(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// GET /api/users?role=manager
func (uc *UserController) GetUsers(c *gin.Context) {
	var role access.Role
	if raw := c.Query("role"); raw != "" {
		r, ok := access.ParseRole(raw)
		if !ok {
			respondError(c, fmt.Errorf("%w: unknown role %q", services.ErrInvalidInput, raw))
			return
		}
		role = r
	}
	users, err := uc.Users.List(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := uc.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	form := forms.NewUserForm()
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	user := form.Model()
	if !canManage(c, user.Role) {
		respondError(c, errSuperAdminOnly)
		return
	}
	if err := uc.Users.Create(c.Request.Context(), &user, form.Password); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := uc.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canManage(c, user.Role) {
		respondError(c, errSuperAdminOnly)
		return
	}

	form := forms.HydrateUser(*user)
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	previous := user.Role
	form.Apply(user)
	if !canManage(c, user.Role) {
		respondError(c, errSuperAdminOnly)
		return
	}
	if user.ID == callerID(c) && user.Role != previous {
		respondError(c, fmt.Errorf("%w: you cannot change your own role", services.ErrInvalidInput))
		return
	}
	if err := uc.Users.Update(c.Request.Context(), user, form.Password); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if id == callerID(c) {
		respondError(c, fmt.Errorf("%w: you cannot delete your own account", services.ErrInvalidInput))
		return
	}
	user, err := uc.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canManage(c, user.Role) {
		respondError(c, errSuperAdminOnly)
		return
	}
	if err := uc.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
