package models

import (
	"time"

	"gorm.io/gorm"

	"hotelops-backend/access"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:150" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"` // bcrypt, never returned
	Role         access.Role    `gorm:"size:32;index" json:"role"`
	StaffID      *uint          `gorm:"index" json:"staff_id,omitempty"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
