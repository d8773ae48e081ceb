package models

import "time"

// Attendance is one staff member's record for one day. Check-in and
// check-out are "HH:MM" wall-clock times on Date.
type Attendance struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	StaffID      uint             `gorm:"not null;uniqueIndex:idx_staff_date" json:"staff_id"`
	Staff        *Staff           `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Date         time.Time        `gorm:"type:date;not null;uniqueIndex:idx_staff_date;index" json:"date"`
	CheckInTime  string           `gorm:"column:check_in_time;size:8" json:"check_in_time"`
	CheckOutTime string           `gorm:"column:check_out_time;size:8" json:"check_out_time"`
	Status       AttendanceStatus `gorm:"size:16;index" json:"status"`
	WorkingHours float64          `json:"working_hours"`
	Notes        string           `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// DayLayout is the DATE column format.
const DayLayout = "2006-01-02"

// CalendarDay returns UTC midnight of t's wall-clock date. Attendance dates
// are always stored in this form.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats a calendar day for DATE comparisons.
func DayKey(t time.Time) string {
	return CalendarDay(t).Format(DayLayout)
}
