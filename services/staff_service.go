package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotelops-backend/models"
)

type StaffFilter struct {
	Search       string
	DepartmentID uint
	Status       models.StaffStatus
	Page         int
	Limit        int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps paging to sane bounds.
func (f *StaffFilter) Normalize() {
	f.Page, f.Limit = clampPaging(f.Page, f.Limit)
}

func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) filtered(ctx context.Context, f StaffFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&models.Staff{})
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + term + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR designation LIKE ?", like, like, like, like)
	}
	if f.DepartmentID != 0 {
		q = q.Where("department_id = ?", f.DepartmentID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (s *StaffService) List(ctx context.Context, f StaffFilter) ([]models.Staff, int64, error) {
	f.Normalize()

	var total int64
	if err := s.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, dbErr("count staff", err)
	}

	var staff []models.Staff
	err := s.filtered(ctx, f).
		Preload("Department").
		Order("first_name ASC, last_name ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&staff).Error
	return staff, total, dbErr("list staff", err)
}

// All returns every staff member matching f, ignoring paging.
func (s *StaffService) All(ctx context.Context, f StaffFilter) ([]models.Staff, error) {
	var staff []models.Staff
	err := s.filtered(ctx, f).Preload("Department").Order("first_name ASC, last_name ASC").Find(&staff).Error
	return staff, dbErr("list staff", err)
}

func (s *StaffService) Get(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.WithContext(ctx).Preload("Department").First(&staff, id).Error; err != nil {
		return nil, dbErr("find staff", err)
	}
	return &staff, nil
}

func (s *StaffService) departmentExists(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Department{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return dbErr("find department", err)
	}
	if n == 0 {
		return dbErr("find department", gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *StaffService) Create(ctx context.Context, staff *models.Staff) error {
	if err := s.departmentExists(ctx, staff.DepartmentID); err != nil {
		return err
	}
	return uniqueErr("create staff", s.DB.WithContext(ctx).Omit("Department").Create(staff).Error, staffEmailKey)
}

func (s *StaffService) Update(ctx context.Context, staff *models.Staff) error {
	if err := s.departmentExists(ctx, staff.DepartmentID); err != nil {
		return err
	}
	staff.Department = nil
	return uniqueErr("update staff", s.DB.WithContext(ctx).Omit("Department").Save(staff).Error, staffEmailKey)
}

// Delete removes the staff member with their permissions and attendance.
func (s *StaffService) Delete(ctx context.Context, id uint) error {
	n, err := s.BulkDelete(ctx, []uint{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return dbErr("delete staff", gorm.ErrRecordNotFound)
	}
	return nil
}

// BulkDelete removes every listed staff member and returns how many existed.
func (s *StaffService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id IN ?", ids).Delete(&models.StaffPermission{}).Error; err != nil {
			return dbErr("delete permissions", err)
		}
		if err := tx.Where("staff_id IN ?", ids).Delete(&models.Attendance{}).Error; err != nil {
			return dbErr("delete attendance", err)
		}
		if err := tx.Model(&models.Department{}).Where("manager_id IN ?", ids).Update("manager_id", nil).Error; err != nil {
			return dbErr("clear department managers", err)
		}
		if err := tx.Model(&models.User{}).Where("staff_id IN ?", ids).Update("staff_id", nil).Error; err != nil {
			return dbErr("unlink users", err)
		}
		res := tx.Unscoped().Where("id IN ?", ids).Delete(&models.Staff{})
		if res.Error != nil {
			return dbErr("delete staff", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
