package config

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/models"
)

var defaultDepartments = []string{
	"Front Office",
	"Housekeeping",
	"Food & Beverage",
	"Kitchen",
	"Maintenance",
}

// SeedDatabase creates the first super admin and the default departments
// on an empty database. Failures are logged, not fatal.
func SeedDatabase(db *gorm.DB, cfg Config, log *zap.Logger) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Warn("failed to hash default admin password", zap.Error(err))
		} else {
			admin := models.User{
				Name:         "Super Admin",
				Email:        cfg.SeedAdminEmail,
				PasswordHash: string(hash),
				Role:         access.RoleSuperAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Warn("failed to create default admin", zap.Error(err))
			} else {
				log.Info("default super admin seeded", zap.String("email", admin.Email))
			}
		}
	}

	var deptCount int64
	db.Model(&models.Department{}).Count(&deptCount)
	if deptCount == 0 {
		departments := make([]models.Department, 0, len(defaultDepartments))
		for _, name := range defaultDepartments {
			f := forms.DepartmentForm{Name: name}
			f.Prepare(forms.ModeAdd)
			departments = append(departments, f.Model())
		}
		if err := db.Create(&departments).Error; err != nil {
			log.Warn("failed to seed departments", zap.Error(err))
		} else {
			log.Info("departments seeded", zap.Int("count", len(departments)))
		}
	}
}
