package app

import (
	"github.com/Waynegg8/horgoscpa-sub000/internal/allowance"
	"github.com/Waynegg8/horgoscpa-sub000/internal/comptime"
	"github.com/Waynegg8/horgoscpa-sub000/internal/employee"
	"github.com/Waynegg8/horgoscpa-sub000/internal/leave"
	"github.com/Waynegg8/horgoscpa-sub000/internal/messaging/kafka"
	"github.com/Waynegg8/horgoscpa-sub000/internal/middleware"
	"github.com/Waynegg8/horgoscpa-sub000/internal/overhead"
	"github.com/Waynegg8/horgoscpa-sub000/internal/payroll"
	"github.com/Waynegg8/horgoscpa-sub000/internal/salaryitem"
	"github.com/Waynegg8/horgoscpa-sub000/internal/settings"
	"github.com/Waynegg8/horgoscpa-sub000/internal/shared/cache"
	"github.com/Waynegg8/horgoscpa-sub000/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	store := cache.NewRedisStore(rdb)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	overheadRepo := overhead.NewRepository(gormDB)
	salaryItemRepo := salaryitem.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	snapshotRepo := payroll.NewSnapshotRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	tripRepo := allowance.NewTripRepository(gormDB)

	// --- Services ---
	settingsService := settings.NewService(settingsRepo)
	timesheetService := timesheet.NewService(timesheetRepo, store)
	leaveService := leave.NewService(leaveRepo)
	comptimeService := comptime.NewService(timesheetRepo, leaveService)
	allowanceService := allowance.NewService(timesheetRepo, tripRepo)
	salaryItemService := salaryitem.NewService(salaryItemRepo)
	payrollCalculator := payroll.NewCalculator(
		employeeRepo,
		timesheetService,
		comptimeService,
		allowanceService,
		leaveService,
		salaryItemService,
	)
	payrollService := payroll.NewService(
		gormDB,
		employeeRepo,
		payrollCalculator,
		settingsService,
		snapshotRepo,
		outboxRepo,
	)
	overheadService := overhead.NewService(
		overheadRepo,
		employeeRepo,
		timesheetRepo,
		payrollCalculator,
		settingsService,
		store,
	)

	// --- Handlers ---
	comptimeHandler := comptime.NewHandler(comptimeService)
	overheadHandler := overhead.NewHandler(overheadService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, payrollCalculator, settingsService, rdb)
	timesheetHandler := timesheet.NewHandler(timesheetService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		comptime.RegisterRoutes(api, comptimeHandler)
		overhead.RegisterRoutes(api, overheadHandler)
		payroll.RegisterRoutes(api, payrollHandler, middleware.Idempotency(rdb))
		timesheet.RegisterRoutes(api, timesheetHandler)
	}

	return nil
}
