package app

import (
	"database/sql"

	"go-leave/internal/approval"
	"go-leave/internal/auth"
	"go-leave/internal/department"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/shared/counter"
	"go-leave/internal/title"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services are the modules startup seeding talks to.
type services struct {
	rbac        rbac.Service
	departments department.Service
	employees   employee.Service
	holidays    holiday.Service
}

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (services, error) {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	titleRepo := title.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewDefaultEnforcer()
	if err != nil {
		return services{}, err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Approval authority ---
	policy := cfg.ApprovalPolicy()
	resolver := approval.NewResolver(approval.NewDirectory(gormDB), policy, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	titleService := title.NewService(db, titleRepo, rdb, policy.ManagerTitles, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	holidayService := holiday.NewService(db, holidayRepo, logger)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, logger)
	balanceService := leavebalance.NewService(db, balanceRepo, leaveTypeRepo, logger)
	leaveService := leave.NewService(db, leaveRepo, resolver, leaveTypeRepo, holidayService, balanceRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	titleHandler := title.NewHandler(titleService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	balanceHandler := leavebalance.NewHandler(balanceService, logger)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		title.RegisterRoutes(api, titleHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
		leavebalance.RegisterRoutes(api, balanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
	}

	return services{
		rbac:        rbacService,
		departments: departmentService,
		employees:   employeeService,
		holidays:    holidayService,
	}, nil
}
