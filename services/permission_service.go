package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"hotelops-backend/access"
	"hotelops-backend/models"
)

type PermissionService struct {
	DB *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{DB: db}
}

func (s *PermissionService) staffExists(tx *gorm.DB, ids ...uint) error {
	var n int64
	if err := tx.Model(&models.Staff{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return dbErr("find staff", err)
	}
	if n != int64(len(ids)) {
		return dbErr("find staff", gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *PermissionService) load(tx *gorm.DB, staffID uint) ([]string, error) {
	var perms []string
	err := tx.Model(&models.StaffPermission{}).
		Where("staff_id = ?", staffID).
		Order("permission ASC").
		Pluck("permission", &perms).Error
	if err != nil {
		return nil, dbErr("list permissions", err)
	}
	if perms == nil {
		perms = []string{}
	}
	return perms, nil
}

func permissionSet(staffID uint, perms []string) *models.PermissionSet {
	return &models.PermissionSet{
		StaffID:     staffID,
		Permissions: perms,
		Matrix:      access.PermissionMatrix(perms),
	}
}

func (s *PermissionService) Get(ctx context.Context, staffID uint) (*models.PermissionSet, error) {
	db := s.DB.WithContext(ctx)
	if err := s.staffExists(db, staffID); err != nil {
		return nil, err
	}
	perms, err := s.load(db, staffID)
	if err != nil {
		return nil, err
	}
	return permissionSet(staffID, perms), nil
}

// cleanPermissions trims, dedupes and sorts perms. Unknown keys are rejected.
func cleanPermissions(perms []string) ([]string, error) {
	seen := make(map[string]bool, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		if !access.ValidPermission(p) {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, p)
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func replacePermissions(tx *gorm.DB, staffID uint, perms []string) error {
	if err := tx.Where("staff_id = ?", staffID).Delete(&models.StaffPermission{}).Error; err != nil {
		return dbErr("clear permissions", err)
	}
	if len(perms) == 0 {
		return nil
	}
	rows := make([]models.StaffPermission, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, models.StaffPermission{StaffID: staffID, Permission: p})
	}
	return dbErr("save permissions", tx.Create(&rows).Error)
}

// Set replaces the staff member's permissions.
func (s *PermissionService) Set(ctx context.Context, staffID uint, perms []string) (*models.PermissionSet, error) {
	cleaned, err := cleanPermissions(perms)
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.staffExists(tx, staffID); err != nil {
			return err
		}
		return replacePermissions(tx, staffID, cleaned)
	})
	if err != nil {
		return nil, err
	}
	return permissionSet(staffID, cleaned), nil
}

func (s *PermissionService) Delete(ctx context.Context, staffID uint) error {
	db := s.DB.WithContext(ctx)
	if err := s.staffExists(db, staffID); err != nil {
		return err
	}
	return dbErr("clear permissions", db.Where("staff_id = ?", staffID).Delete(&models.StaffPermission{}).Error)
}

func (s *PermissionService) Defaults(designation string) []string {
	return access.DesignationDefaults(designation)
}

// copyTargets drops duplicates, zero ids and the source from to.
func copyTargets(from uint, to []uint) []uint {
	seen := map[uint]bool{from: true, 0: true}
	targets := make([]uint, 0, len(to))
	for _, id := range to {
		if !seen[id] {
			seen[id] = true
			targets = append(targets, id)
		}
	}
	return targets
}

// Copy overwrites the permissions of every distinct target with those of
// from and returns how many targets were written.
func (s *PermissionService) Copy(ctx context.Context, from uint, to []uint) (int, error) {
	targets := copyTargets(from, to)
	if len(targets) == 0 {
		return 0, fmt.Errorf("%w: no target staff", ErrInvalidInput)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.staffExists(tx, append([]uint{from}, targets...)...); err != nil {
			return err
		}
		perms, err := s.load(tx, from)
		if err != nil {
			return err
		}
		for _, id := range targets {
			if err := replacePermissions(tx, id, perms); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(targets), nil
}
