package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotelops-backend/models"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

type departmentCount struct {
	DepartmentID uint
	Total        int64
}

func (s *DepartmentService) staffCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []departmentCount
	err := s.DB.WithContext(ctx).Model(&models.Staff{}).
		Select("department_id, COUNT(*) AS total").
		Where("department_id IS NOT NULL").
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, dbErr("count staff per department", err)
	}
	out := make(map[uint]int64, len(rows))
	for _, r := range rows {
		out[r.DepartmentID] = r.Total
	}
	return out, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.DB.WithContext(ctx).Preload("Manager").Order("name ASC").Find(&departments).Error; err != nil {
		return nil, dbErr("list departments", err)
	}
	counts, err := s.staffCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		departments[i].StaffCount = counts[departments[i].ID]
	}
	return departments, nil
}

func (s *DepartmentService) Get(ctx context.Context, id uint) (*models.Department, error) {
	var d models.Department
	if err := s.DB.WithContext(ctx).Preload("Manager").First(&d, id).Error; err != nil {
		return nil, dbErr("find department", err)
	}
	if err := s.DB.WithContext(ctx).Model(&models.Staff{}).Where("department_id = ?", id).Count(&d.StaffCount).Error; err != nil {
		return nil, dbErr("count department staff", err)
	}
	return &d, nil
}

func (s *DepartmentService) managerExists(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Staff{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return dbErr("find manager", err)
	}
	if n == 0 {
		return dbErr("find manager", gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *DepartmentService) Create(ctx context.Context, d *models.Department) error {
	if err := s.managerExists(ctx, d.ManagerID); err != nil {
		return err
	}
	return uniqueErr("create department", s.DB.WithContext(ctx).Omit("Manager").Create(d).Error, departmentNameKey, departmentCodeKey)
}

func (s *DepartmentService) Update(ctx context.Context, d *models.Department) error {
	if err := s.managerExists(ctx, d.ManagerID); err != nil {
		return err
	}
	d.Manager = nil
	return uniqueErr("update department", s.DB.WithContext(ctx).Omit("Manager").Save(d).Error, departmentNameKey, departmentCodeKey)
}

// Delete refuses while staff are still assigned to the department.
func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	var assigned int64
	if err := s.DB.WithContext(ctx).Model(&models.Staff{}).Where("department_id = ?", id).Count(&assigned).Error; err != nil {
		return dbErr("count department staff", err)
	}
	if assigned > 0 {
		return fmt.Errorf("department has %d staff: %w", assigned, ErrConflict)
	}
	res := s.DB.WithContext(ctx).Unscoped().Delete(&models.Department{}, id)
	if res.Error != nil {
		return dbErr("delete department", res.Error)
	}
	if res.RowsAffected == 0 {
		return dbErr("delete department", gorm.ErrRecordNotFound)
	}
	return nil
}
