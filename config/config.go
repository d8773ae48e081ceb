package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hotelops-backend/access"
	"hotelops-backend/utils"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	ServiceName string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr   string
	RabbitMQURL string

	CORSOrigins []string
	UploadDir   string

	LoginPath        string
	UnauthorizedPath string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// Load reads .env when present, then the process environment. It reports
// whether a .env file was loaded so the caller can log it.
func Load() (Config, bool) {
	loaded := godotenv.Load() == nil

	cfg := Config{
		Port:              utils.EnvOrDefault("PORT", "8080"),
		Environment:       utils.EnvOrDefault("APP_ENV", "development"),
		LogLevel:          utils.EnvOrDefault("LOG_LEVEL", "info"),
		ServiceName:       utils.EnvOrDefault("SERVICE_NAME", "hotelops-backend"),
		JWTSecret:         utils.EnvOrDefault("JWT_SECRET", "change-me"),
		JWTTTL:            utils.EnvDuration("JWT_TTL", 24*time.Hour),
		RedisAddr:         utils.EnvOrDefault("REDIS_ADDR", ""),
		RabbitMQURL:       utils.EnvOrDefault("RABBITMQ_URL", utils.EnvOrDefault("AMQP_URL", "")),
		CORSOrigins:       parseList(utils.EnvOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		UploadDir:         utils.EnvOrDefault("UPLOAD_DIR", "uploads"),
		LoginPath:         utils.EnvOrDefault("LOGIN_PATH", access.DefaultLoginPath),
		UnauthorizedPath:  utils.EnvOrDefault("UNAUTHORIZED_PATH", access.DefaultUnauthorizedPath),
		SeedAdminEmail:    utils.EnvOrDefault("SEED_ADMIN_EMAIL", "admin@hotel.local"),
		SeedAdminPassword: utils.EnvOrDefault("SEED_ADMIN_PASSWORD", "admin123"),
	}
	return cfg, loaded
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
