package models

import "time"

// StaffPermission grants one "<module>.<action>" permission to a staff member.
type StaffPermission struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StaffID    uint      `gorm:"not null;index:idx_staff_permission,unique" json:"staff_id"`
	Permission string    `gorm:"size:150;not null;index:idx_staff_permission,unique" json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
}
