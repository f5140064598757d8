package app

import (
	"database/sql"

	"go-hrms/internal/attendance"
	"go-hrms/internal/audit"
	"go-hrms/internal/auth"
	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/holiday"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/principal"
	"go-hrms/internal/security"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Registry exposes the pieces the server lifecycle still needs after
// route registration.
type Registry struct {
	AuditWriter audit.Writer
}

func registerModules(
	router *gin.Engine,
	settings *config.Settings,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	rdb *redis.Client,
) *Registry {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	principalRepo := principal.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB, sqlDB)
	holidayRepo := holiday.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Cross-cutting ---
	tokens := security.NewTokenManager(settings.JWTSecret, settings.AccessTokenTTL, settings.RefreshTokenTTL)
	resolver := principal.NewResolver(tokens, principalRepo)
	auditWriter := audit.NewWriter(auditRepo, outboxRepo)

	// --- Services ---
	authService := auth.NewService(authRepo, principalRepo, tokens, auditWriter)
	employeeService := employee.NewService(employeeRepo, counterRepo, auditWriter)
	attendanceService := attendance.NewService(attendanceRepo, auditWriter)
	leaveService := leave.NewService(sqlDB, leaveRepo, auditWriter)
	holidayService := holiday.NewService(holidayRepo)
	payrollService := payroll.NewService(payrollRepo, rdb)
	auditService := audit.NewService(auditRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	holidayHandler := holiday.NewHandler(holidayService)
	payrollHandler := payroll.NewHandler(payrollService)
	auditHandler := audit.NewHandler(auditService)

	// --- Routes ---
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler, resolver)
		employee.RegisterRoutes(api, employeeHandler, resolver, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, resolver)
		leave.RegisterRoutes(api, leaveHandler, resolver, rdb)
		holiday.RegisterRoutes(api, holidayHandler, resolver)
		payroll.RegisterRoutes(api, payrollHandler, resolver)
		audit.RegisterRoutes(api, auditHandler, resolver)
	}

	return &Registry{AuditWriter: auditWriter}
}
