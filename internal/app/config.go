package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-leave/internal/approval"
	"go-leave/internal/shared/connection"

	"github.com/google/uuid"
)

type Config struct {
	Port   string
	AppEnv string

	DB          connection.DBConfig
	RedisAddr   string
	KafkaBroker string

	CORSAllowedOrigins []string

	HRDepartmentID    *uuid.UUID
	HRDepartmentNames []string
	ManagerTitles     []string

	AdminEmail    string
	AdminPassword string

	HolidaySeedYears int
}

// LoadConfig reads the process environment. Call godotenv.Load first when a
// .env file should be honored.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),
		DB: connection.DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "go_leave"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		HRDepartmentNames:  splitList(os.Getenv("HR_DEPARTMENT_NAMES")),
		ManagerTitles:      splitList(os.Getenv("MANAGER_TITLES")),
		AdminEmail:         strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
	}

	if len(cfg.HRDepartmentNames) == 0 {
		cfg.HRDepartmentNames = approval.DefaultHRDepartmentNames
	}
	if len(cfg.ManagerTitles) == 0 {
		cfg.ManagerTitles = approval.DefaultManagerTitles
	}

	if raw := strings.TrimSpace(os.Getenv("HR_DEPARTMENT_ID")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Config{}, fmt.Errorf("HR_DEPARTMENT_ID: %w", err)
		}
		cfg.HRDepartmentID = &id
	}

	years, err := strconv.Atoi(getEnv("HOLIDAY_SEED_YEARS", "2"))
	if err != nil || years < 0 {
		return Config{}, fmt.Errorf("HOLIDAY_SEED_YEARS must be a non-negative integer")
	}
	cfg.HolidaySeedYears = years

	if os.Getenv("JWT_SECRET") == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminEmail != "" && len(cfg.AdminPassword) < 8 {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters when ADMIN_EMAIL is set")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// ApprovalPolicy is the authority configuration for the leave workflow.
func (c Config) ApprovalPolicy() approval.Policy {
	return approval.Policy{
		ManagerTitles:     approval.NewNameSet(c.ManagerTitles...),
		HRDepartmentID:    c.HRDepartmentID,
		HRDepartmentNames: approval.NewNameSet(c.HRDepartmentNames...),
	}
}

// SystemHRDepartmentName is the department provisioned at startup when no HR
// department id is configured.
func (c Config) SystemHRDepartmentName() string {
	return c.HRDepartmentNames[0]
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
