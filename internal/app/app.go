package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/connection"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema, registers every
// module on router and seeds the reference data. The returned func releases
// the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := connection.RunMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database migrated")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	router.Use(middleware.RequestID())
	router.GET("/healthz", healthHandler(gormDB, redisClient))

	// 2. Register Modules & Routes
	svc, err := registerModules(router, cfg, sqlDB, gormDB, redisClient, zap.L())
	if err != nil {
		cleanup()
		return nil, err
	}

	// 3. Seed reference data
	if err := seed(ctx, cfg, svc, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func seed(ctx context.Context, cfg Config, svc services, logger *zap.Logger) error {
	if err := svc.rbac.LoadPolicy(ctx); err != nil {
		return fmt.Errorf("load rbac policy: %w", err)
	}

	if cfg.HRDepartmentID == nil {
		if _, err := svc.departments.EnsureSystemDepartment(ctx, cfg.SystemHRDepartmentName()); err != nil {
			return fmt.Errorf("ensure hr department: %w", err)
		}
	}

	year := time.Now().Year()
	for i := 0; i < cfg.HolidaySeedYears; i++ {
		res, err := svc.holidays.Generate(ctx, year+i)
		if err != nil {
			return fmt.Errorf("seed holidays %d: %w", year+i, err)
		}
		logger.Info("holiday calendar ready", zap.Int("year", res.Year), zap.Bool("created", res.Created))
	}

	if cfg.AdminEmail != "" {
		admin, err := svc.employees.EnsureSystemAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("ensure system admin: %w", err)
		}
		logger.Info("system admin ready", zap.String("employee_id", admin.ID))
	}

	return nil
}

func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		code := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}

		if code != http.StatusOK {
			response.Error(c, code, apperror.CodeServiceUnavailable, "Dependency unavailable", status)
			return
		}
		response.Success(c, code, status, nil)
	}
}
