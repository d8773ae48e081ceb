package models

import (
	"time"

	"gorm.io/gorm"
)

type Department struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:150;uniqueIndex" json:"name"`
	Code        string           `gorm:"size:20;uniqueIndex" json:"code"`
	Description string           `gorm:"type:text" json:"description"`
	ManagerID   *uint            `gorm:"index" json:"manager_id"`
	Manager     *Staff           `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Status      DepartmentStatus `gorm:"size:16;default:Active" json:"status"`
	StaffCount  int64            `gorm:"-" json:"staff_count"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}
