package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/models"
)

// UserService manages login accounts on behalf of administrators.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// List returns accounts ordered by name. An empty role lists every account.
func (s *UserService) List(ctx context.Context, role access.Role) ([]models.User, error) {
	q := s.DB.WithContext(ctx).Order("name ASC, id ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var users []models.User
	err := q.Find(&users).Error
	return users, dbErr("list users", err)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, dbErr("find user", err)
	}
	return &user, nil
}

// checkStaffLink reports a field error when the linked staff member is
// missing or already has another account.
func (s *UserService) checkStaffLink(ctx context.Context, user *models.User) error {
	if user.StaffID == nil {
		return nil
	}
	db := s.DB.WithContext(ctx)
	var n int64
	if err := db.Model(&models.Staff{}).Where("id = ?", *user.StaffID).Count(&n).Error; err != nil {
		return dbErr("find staff", err)
	}
	if n == 0 {
		return forms.FieldErrors{"staff_id": "Staff member not found"}
	}
	q := db.Model(&models.User{}).Where("staff_id = ?", *user.StaffID)
	if user.ID != 0 {
		q = q.Where("id <> ?", user.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return dbErr("find linked user", err)
	}
	if n > 0 {
		return forms.FieldErrors{"staff_id": "Staff member already has an account"}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Create stores a new account with a bcrypt hash of password.
func (s *UserService) Create(ctx context.Context, user *models.User, password string) error {
	if err := s.checkStaffLink(ctx, user); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uniqueErr("create user", s.DB.WithContext(ctx).Create(user).Error, userEmailKey)
}

// Update saves user. A non-empty password replaces the stored hash.
func (s *UserService) Update(ctx context.Context, user *models.User, password string) error {
	if err := s.checkStaffLink(ctx, user); err != nil {
		return err
	}
	if password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return uniqueErr("update user", s.DB.WithContext(ctx).Save(user).Error, userEmailKey)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Unscoped().Delete(&models.User{}, id)
	if res.Error != nil {
		return dbErr("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return dbErr("delete user", gorm.ErrRecordNotFound)
	}
	return nil
}
