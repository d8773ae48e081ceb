package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Staff struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	FirstName    string          `gorm:"size:100" json:"first_name"`
	LastName     string          `gorm:"size:100" json:"last_name"`
	Email        string          `gorm:"uniqueIndex;size:150" json:"email"`
	Phone        string          `gorm:"size:50" json:"phone"`
	Address      string          `gorm:"type:text" json:"address"`
	Gender       string          `gorm:"size:20" json:"gender"`
	DateOfBirth  *time.Time      `json:"date_of_birth,omitempty"`
	DepartmentID *uint           `gorm:"index" json:"department_id"`
	Department   *Department     `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Designation  string          `gorm:"size:100;index" json:"designation"`
	Salary       decimal.Decimal `gorm:"type:decimal(12,2)" json:"salary"`
	JoiningDate  *time.Time      `json:"joining_date,omitempty"`
	Status       StaffStatus     `gorm:"size:16;index;default:Active" json:"status"`
	ProfileImage string          `gorm:"size:255" json:"profile_image"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (s Staff) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
