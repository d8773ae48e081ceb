package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotelops-backend/models"
	"hotelops-backend/utils"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ResolveMySQLDSN prefers MYSQL_URL, then DATABASE_URL, then the DB_* parts.
// URLs in mysql:// form are converted to a driver DSN. The result always
// parses times and talks to the server in UTC.
func ResolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	dsn := raw
	if strings.HasPrefix(raw, "mysql://") {
		var err error
		if dsn, err = mysqlDSNFromURL(raw); err != nil {
			return "", err
		}
	}
	if dsn == "" {
		user := utils.EnvOrDefault("DB_USER", "root")
		pass := utils.EnvOrDefault("DB_PASS", "")
		host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
		port := utils.EnvOrDefault("DB_PORT", "3306")
		dbName := utils.EnvOrDefault("DB_NAME", "hotelops")

		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			user, pass, host, port, dbName,
		)
	}
	return pinUTC(dsn)
}

// pinUTC forces parseTime and loc=UTC on dsn. Attendance dates are UTC
// midnights; any other session location moves them to a neighbouring day.
func pinUTC(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Open connects to MySQL with the zap-backed gorm logger and pool settings.
func Open(dsn string, cfg Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		level = gormlogger.Info
	}
	newLogger := gormlogger.New(
		zap.NewStdLog(log.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !cfg.IsProduction(),
		},
	)

	// departments.manager_id and staffs.department_id reference each other;
	// the services keep those links consistent themselves.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                                   newLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	// parent -> child order
	return db.AutoMigrate(
		&models.Department{},
		&models.Staff{},
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Attendance{},
		&models.StaffPermission{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// ConnectDatabase opens MySQL, migrates every table and seeds the defaults.
func ConnectDatabase(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}
	db, err := Open(dsn, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db, cfg, log)
	return db, nil
}
