package forms

import (
	"math"
	"strings"
	"time"

	"hotelops-backend/models"
)

type AttendanceForm struct {
	StaffID      uint                    `json:"staff_id"`
	Date         string                  `json:"date"`
	CheckInTime  string                  `json:"check_in_time"`
	CheckOutTime string                  `json:"check_out_time"`
	Status       models.AttendanceStatus `json:"status"`
	Notes        string                  `json:"notes"`
}

// NewAttendanceForm returns add-mode defaults: today's date, status Present.
func NewAttendanceForm(now time.Time) AttendanceForm {
	return AttendanceForm{
		Date:   now.Format(DateLayout),
		Status: models.AttendancePresent,
	}
}

func HydrateAttendance(a models.Attendance) AttendanceForm {
	return AttendanceForm{
		StaffID:      a.StaffID,
		Date:         models.DayKey(a.Date),
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       a.Status,
		Notes:        a.Notes,
	}
}

// Normalize trims input and clears the time fields when the status disables them.
func (f *AttendanceForm) Normalize() {
	f.Date = strings.TrimSpace(f.Date)
	f.CheckInTime = strings.TrimSpace(f.CheckInTime)
	f.CheckOutTime = strings.TrimSpace(f.CheckOutTime)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.Status == models.AttendanceAbsent {
		f.CheckInTime = ""
		f.CheckOutTime = ""
	}
}

func (f AttendanceForm) Validate() FieldErrors {
	errs := FieldErrors{}
	f.Normalize()

	if f.StaffID == 0 {
		errs.Add("staff_id", "Staff member is required")
	}
	if f.Date == "" {
		errs.Add("date", "Date is required")
	} else if _, err := parseDate(f.Date); err != nil {
		errs.Add("date", "Date must be in YYYY-MM-DD format")
	}
	if !f.Status.Valid() {
		errs.Add("status", "Status must be one of Present, Absent, Late, Half Day")
	}

	if f.Status.RequiresCheckIn() && f.CheckInTime == "" {
		errs.Add("check_in_time", "Check-in time is required")
	}

	var in, out time.Time
	var inErr, outErr error
	if f.CheckInTime != "" {
		if in, inErr = parseClock(f.CheckInTime); inErr != nil {
			errs.Add("check_in_time", "Check-in time must be in HH:MM format")
		}
	}
	if f.CheckOutTime != "" {
		if out, outErr = parseClock(f.CheckOutTime); outErr != nil {
			errs.Add("check_out_time", "Check-out time must be in HH:MM format")
		}
	}
	if f.CheckInTime != "" && f.CheckOutTime != "" && inErr == nil && outErr == nil {
		if !out.After(in) {
			errs.Add("check_out_time", "Check-out time must be after check-in time")
		}
	}

	if len(f.Notes) > 500 {
		errs.Add("notes", "Notes must be at most 500 characters")
	}
	return errs
}

// Model builds the attendance record. Call it only after Validate passes.
func (f AttendanceForm) Model() models.Attendance {
	f.Normalize()
	date, _ := parseDate(f.Date)
	return models.Attendance{
		StaffID:      f.StaffID,
		Date:         date,
		CheckInTime:  f.CheckInTime,
		CheckOutTime: f.CheckOutTime,
		Status:       f.Status,
		WorkingHours: WorkingHours(f.CheckInTime, f.CheckOutTime),
		Notes:        f.Notes,
	}
}

// Apply copies the form onto an existing record, keeping its identity.
func (f AttendanceForm) Apply(a *models.Attendance) {
	m := f.Model()
	a.StaffID = m.StaffID
	a.Date = m.Date
	a.CheckInTime = m.CheckInTime
	a.CheckOutTime = m.CheckOutTime
	a.Status = m.Status
	a.WorkingHours = m.WorkingHours
	a.Notes = m.Notes
}

// WorkingHours is the same-day span between check-in and check-out, rounded
// to two decimals. Missing or inverted times count as zero.
func WorkingHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, err := parseClock(checkIn)
	if err != nil {
		return 0
	}
	out, err := parseClock(checkOut)
	if err != nil || !out.After(in) {
		return 0
	}
	return math.Round(out.Sub(in).Hours()*100) / 100
}
