package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelops-backend/models"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type statusCount struct {
	Status models.RoomStatus
	Total  int64
}

func (s *DashboardService) Summary(ctx context.Context, now time.Time) (*models.DashboardSummary, error) {
	db := s.DB.WithContext(ctx)
	today := models.DayKey(now)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := &models.DashboardSummary{RoomsByStatus: map[models.RoomStatus]int64{}}
	for _, st := range models.RoomStatuses {
		out.RoomsByStatus[st] = 0
	}

	counts := []struct {
		name  string
		query *gorm.DB
		dst   *int64
	}{
		{"hotels", db.Model(&models.Hotel{}), &out.Hotels},
		{"rooms", db.Model(&models.Room{}), &out.Rooms},
		{"staff", db.Model(&models.Staff{}), &out.Staff},
		{"active staff", db.Model(&models.Staff{}).Where("status = ?", models.StaffActive), &out.ActiveStaff},
		{"present staff", db.Model(&models.Attendance{}).
			Where("date = ? AND status IN ?", today, []models.AttendanceStatus{models.AttendancePresent, models.AttendanceLate, models.AttendanceHalfDay}), &out.PresentToday},
		{"departments", db.Model(&models.Department{}), &out.Departments},
		{"open orders", db.Model(&models.Order{}).
			Where("status IN ?", []models.OrderStatus{models.OrderPending, models.OrderInProgress, models.OrderPrepared}), &out.OpenOrders},
		{"orders today", db.Model(&models.Order{}).Where("created_at >= ?", startOfDay), &out.OrdersToday},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, dbErr("count "+c.name, err)
		}
	}

	var rows []statusCount
	if err := db.Model(&models.Room{}).Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return nil, dbErr("count rooms by status", err)
	}
	for _, r := range rows {
		out.RoomsByStatus[r.Status] = r.Total
	}
	return out, nil
}
