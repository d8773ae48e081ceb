package services

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops-backend/models"
)

type AttendanceFilter struct {
	StaffID uint
	Date    *time.Time
	From    *time.Time
	To      *time.Time
	Status  models.AttendanceStatus
	Page    int
	Limit   int
}

func (f *AttendanceFilter) Normalize() {
	f.Page, f.Limit = clampPaging(f.Page, f.Limit)
}

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

func (s *AttendanceService) filtered(ctx context.Context, f AttendanceFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&models.Attendance{})
	if f.StaffID != 0 {
		q = q.Where("staff_id = ?", f.StaffID)
	}
	if f.Date != nil {
		q = q.Where("date = ?", models.DayKey(*f.Date))
	}
	if f.From != nil {
		q = q.Where("date >= ?", models.DayKey(*f.From))
	}
	if f.To != nil {
		q = q.Where("date <= ?", models.DayKey(*f.To))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (s *AttendanceService) List(ctx context.Context, f AttendanceFilter) ([]models.Attendance, int64, error) {
	f.Page, f.Limit = clampPaging(f.Page, f.Limit)

	var total int64
	if err := s.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, dbErr("count attendance", err)
	}

	var records []models.Attendance
	err := s.filtered(ctx, f).
		Preload("Staff").
		Order("date DESC, staff_id ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&records).Error
	return records, total, dbErr("list attendance", err)
}

func (s *AttendanceService) Get(ctx context.Context, id uint) (*models.Attendance, error) {
	var a models.Attendance
	if err := s.DB.WithContext(ctx).Preload("Staff").First(&a, id).Error; err != nil {
		return nil, dbErr("find attendance", err)
	}
	return &a, nil
}

func (s *AttendanceService) staffExists(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&models.Staff{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return dbErr("find staff", err)
	}
	if n == 0 {
		return dbErr("find staff", gorm.ErrRecordNotFound)
	}
	return nil
}

// Create fails with ErrConflict when the staff member already has a record
// for that date.
func (s *AttendanceService) Create(ctx context.Context, a *models.Attendance) error {
	db := s.DB.WithContext(ctx)
	if err := s.staffExists(db, a.StaffID); err != nil {
		return err
	}
	a.Date = models.CalendarDay(a.Date)
	return dbErr("create attendance", db.Omit("Staff").Create(a).Error)
}

func (s *AttendanceService) Update(ctx context.Context, a *models.Attendance) error {
	db := s.DB.WithContext(ctx)
	if err := s.staffExists(db, a.StaffID); err != nil {
		return err
	}
	a.Staff = nil
	a.Date = models.CalendarDay(a.Date)
	return dbErr("update attendance", db.Omit("Staff").Save(a).Error)
}

func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Attendance{}, id)
	if res.Error != nil {
		return dbErr("delete attendance", res.Error)
	}
	if res.RowsAffected == 0 {
		return dbErr("delete attendance", gorm.ErrRecordNotFound)
	}
	return nil
}

// Daily returns every active staff member with their record for date, if any.
func (s *AttendanceService) Daily(ctx context.Context, date time.Time) ([]models.DailyAttendance, error) {
	var staff []models.Staff
	err := s.DB.WithContext(ctx).
		Preload("Department").
		Where("status = ?", models.StaffActive).
		Order("first_name ASC, last_name ASC").
		Find(&staff).Error
	if err != nil {
		return nil, dbErr("list staff", err)
	}

	var records []models.Attendance
	if err := s.DB.WithContext(ctx).Where("date = ?", models.DayKey(date)).Find(&records).Error; err != nil {
		return nil, dbErr("list attendance", err)
	}
	byStaff := make(map[uint]*models.Attendance, len(records))
	for i := range records {
		byStaff[records[i].StaffID] = &records[i]
	}

	out := make([]models.DailyAttendance, 0, len(staff))
	for _, st := range staff {
		out = append(out, models.DailyAttendance{Staff: st, Attendance: byStaff[st.ID]})
	}
	return out, nil
}

// Bulk upserts one record per (staff, date) in a single transaction.
func (s *AttendanceService) Bulk(ctx context.Context, records []models.Attendance) ([]models.Attendance, error) {
	if len(records) == 0 {
		return []models.Attendance{}, nil
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := s.staffExists(tx, records[i].StaffID); err != nil {
				return err
			}
			records[i].Date = models.CalendarDay(records[i].Date)
		}
		return dbErr("save attendance", tx.Omit("Staff").Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"check_in_time", "check_out_time", "status", "working_hours", "notes", "updated_at",
			}),
		}).Create(&records).Error)
	})
	if err != nil {
		return nil, err
	}

	// ids are not reliable after ON DUPLICATE KEY UPDATE, so read back
	saved := make([]models.Attendance, 0, len(records))
	for _, r := range records {
		var a models.Attendance
		err := s.DB.WithContext(ctx).
			Where("staff_id = ? AND date = ?", r.StaffID, models.DayKey(r.Date)).
			First(&a).Error
		if err != nil {
			return nil, dbErr("reload attendance", err)
		}
		saved = append(saved, a)
	}
	return saved, nil
}
