package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/middleware"
	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type AttendanceStore interface {
	List(ctx context.Context, f services.AttendanceFilter) ([]models.Attendance, int64, error)
	Get(ctx context.Context, id uint) (*models.Attendance, error)
	Create(ctx context.Context, a *models.Attendance) error
	Update(ctx context.Context, a *models.Attendance) error
	Delete(ctx context.Context, id uint) error
	Daily(ctx context.Context, date time.Time) ([]models.DailyAttendance, error)
	Bulk(ctx context.Context, records []models.Attendance) ([]models.Attendance, error)
}

type AttendanceController struct {
	Attendance AttendanceStore
	Now        func() time.Time
}

func NewAttendanceController(store AttendanceStore) *AttendanceController {
	return &AttendanceController{Attendance: store, Now: time.Now}
}

// ownStaffID returns the staff id a staff-role caller is limited to. ok is
// false when the caller is a staff account without a linked staff record.
func ownStaffID(c *gin.Context) (id uint, limited, ok bool) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Role != access.RoleStaff {
		return 0, false, true
	}
	if claims.StaffID == nil {
		return 0, true, false
	}
	return *claims.StaffID, true, true
}

// GET /api/attendance
func (ac *AttendanceController) GetAttendanceList(c *gin.Context) {
	f := services.AttendanceFilter{
		Status: models.AttendanceStatus(c.Query("status")),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if id := queryUint(c, "staff_id"); id != nil {
		f.StaffID = *id
	}
	var err error
	if f.Date, err = queryDate(c, "date"); err == nil {
		if f.From, err = queryDate(c, "from"); err == nil {
			f.To, err = queryDate(c, "to")
		}
	}
	if err != nil {
		respondError(c, err)
		return
	}
	f.Normalize()

	own, limited, ok := ownStaffID(c)
	if !ok {
		respondError(c, services.ErrForbidden)
		return
	}
	if limited {
		f.StaffID = own
	}

	records, total, err := ac.Attendance.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, records, total, f.Page, f.Limit)
}

// GET /api/attendance/:id
func (ac *AttendanceController) GetAttendance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	record, err := ac.Attendance.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	own, limited, ok := ownStaffID(c)
	if !ok || (limited && record.StaffID != own) {
		respondError(c, services.ErrForbidden)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

// GET /api/attendance/daily?date=
func (ac *AttendanceController) GetDailyAttendance(c *gin.Context) {
	date, err := queryDate(c, "date")
	if err != nil {
		respondError(c, err)
		return
	}
	if date == nil {
		today := models.CalendarDay(ac.Now())
		date = &today
	}
	rows, err := ac.Attendance.Daily(c.Request.Context(), *date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"date": date.Format(forms.DateLayout), "staff": rows})
}

// POST /api/attendance
func (ac *AttendanceController) CreateAttendance(c *gin.Context) {
	form := forms.NewAttendanceForm(ac.Now())
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeAdd, form); err != nil {
		respondError(c, err)
		return
	}

	record := form.Model()
	if err := ac.Attendance.Create(c.Request.Context(), &record); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}

// PUT /api/attendance/:id
func (ac *AttendanceController) UpdateAttendance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	record, err := ac.Attendance.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.HydrateAttendance(*record)
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	if err := forms.Submit(forms.ModeEdit, form); err != nil {
		respondError(c, err)
		return
	}

	form.Apply(record)
	if err := ac.Attendance.Update(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

// DELETE /api/attendance/:id
func (ac *AttendanceController) DeleteAttendance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ac.Attendance.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Attendance deleted successfully"})
}

type bulkAttendanceRequest struct {
	Records []forms.AttendanceForm `json:"records"`
}

// POST /api/attendance/bulk
//
// Every record is validated before anything is written. Field errors are
// reported as "records[i].field".
func (ac *AttendanceController) BulkAttendance(c *gin.Context) {
	var req bulkAttendanceRequest
	if err := bindForm(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if len(req.Records) == 0 {
		respondError(c, forms.FieldErrors{"records": "At least one record is required"})
		return
	}

	errs := forms.FieldErrors{}
	records := make([]models.Attendance, 0, len(req.Records))
	for i, f := range req.Records {
		if f.Status == "" {
			f.Status = models.AttendancePresent
		}
		for field, msg := range f.Validate() {
			errs.Add(fmt.Sprintf("records[%d].%s", i, field), msg)
		}
		records = append(records, f.Model())
	}
	if err := errs.Err(); err != nil {
		respondError(c, err)
		return
	}

	saved, err := ac.Attendance.Bulk(c.Request.Context(), records)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, saved)
}
