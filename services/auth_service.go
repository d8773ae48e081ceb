package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/metrics"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

type AuthService struct {
	DB      *gorm.DB
	Tokens  *TokenService
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewAuthService(db *gorm.DB, tokens *TokenService, m *metrics.Metrics, log *zap.Logger) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Metrics: m, Log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, forms.FieldErrors{"email": "Email and password are required"}
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Metrics.RecordAuthAttempt("failure")
			s.Log.Info("login rejected", zap.String("email", utils.MaskEmail(email)))
			return nil, ErrInvalidCredential
		}
		return nil, dbErr("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.Metrics.RecordAuthAttempt("failure")
		s.Log.Info("login rejected", zap.String("email", utils.MaskEmail(email)))
		return nil, ErrInvalidCredential
	}

	token, err := s.Tokens.Generate(user.ID, user.Role, user.StaffID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	now := time.Now()
	if err := s.DB.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		s.Log.Warn("failed to record last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	user.LastLoginAt = &now

	s.Metrics.RecordAuthAttempt("success")
	return &models.AuthResult{Token: token, User: user}, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) Validate() forms.FieldErrors {
	errs := forms.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if !forms.IsEmail(strings.TrimSpace(in.Email)) {
		errs.Add("email", "Valid email is required")
	}
	if len(in.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}
	return errs
}

// Register creates a self-service account with the user role.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.AuthResult, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         access.RoleUser,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, uniqueErr("create user", err, userEmailKey)
	}

	token, err := s.Tokens.Generate(user.ID, user.Role, user.StaffID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, dbErr("find user", err)
	}
	return &user, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	return s.Tokens.Revoke(ctx, claims)
}
