package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/middleware"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type AuthStore interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, in services.RegisterInput) (*models.AuthResult, error)
	Me(ctx context.Context, userID uint) (*models.User, error)
	Logout(ctx context.Context, claims *services.Claims) error
}

type AuthController struct {
	Auth AuthStore
}

func NewAuthController(auth AuthStore) *AuthController {
	return &AuthController{Auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	res, err := ac.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := bindForm(c, &in); err != nil {
		respondError(c, err)
		return
	}
	res, err := ac.Auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Auth.Me(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(c.Request.Context(), middleware.ClaimsFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// AccessController exposes the dashboard route matrix so the web app and the
// API agree on who may open which area.
type AccessController struct {
	Matrix *access.Matrix
	Gate   access.Gate
}

func NewAccessController(matrix *access.Matrix, gate access.Gate) *AccessController {
	return &AccessController{Matrix: matrix, Gate: gate}
}

// GET /api/access/check?path=
func (ac *AccessController) Check(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		utils.JSONError(c, http.StatusBadRequest, "path is required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ac.Matrix.Check(ac.Gate, path, middleware.GateState(c)))
}

// GET /api/access/areas
func (ac *AccessController) Areas(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ac.Matrix.Areas())
}

type DashboardStore interface {
	Summary(ctx context.Context, now time.Time) (*models.DashboardSummary, error)
}

type DashboardController struct {
	Dashboard DashboardStore
	Now       func() time.Time
}

func NewDashboardController(store DashboardStore) *DashboardController {
	return &DashboardController{Dashboard: store, Now: time.Now}
}

// GET /api/dashboard/summary
func (dc *DashboardController) Summary(c *gin.Context) {
	summary, err := dc.Dashboard.Summary(c.Request.Context(), dc.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
