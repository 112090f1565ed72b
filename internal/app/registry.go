package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/auth"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/employee"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/export"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/investor"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/messaging/kafka"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/payroll"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/pos"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/rbac"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/reconcile"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/tabletimer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	investorRepo := investor.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	reconcileRepo := reconcile.NewRepository(gormDB)
	registerRepo := register.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	timerRepo := tabletimer.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- External collaborators ---
	salesAPI := pos.NewClient(os.Getenv("POS_API_URL"), os.Getenv("POS_API_TOKEN"))

	var pusher export.SheetsPusher
	if keyPath := os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"); keyPath != "" {
		key, err := os.ReadFile(keyPath)
		if err != nil {
			return err
		}
		pusher = export.NewSheetsPusher(key)
	} else {
		zap.L().Warn("GOOGLE_SERVICE_ACCOUNT_KEY not set, sheet export disabled")
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	bonusService := bonus.NewServiceWithOutbox(db, bonusRepo, outboxRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	investorService := investor.NewService(investorRepo)
	payrollService := payroll.NewService(db, payrollRepo, rdb)
	registerService := register.NewService(db, registerRepo)
	reconcileService := reconcile.NewService(db, reconcileRepo, registerRepo, registerService)
	shiftService := shift.NewServiceWithOutbox(db, shiftRepo, registerRepo, outboxRepo)
	timerService := tabletimer.NewService(db, timerRepo)
	posService := pos.NewService(db, salesAPI, registerRepo)
	exportService := export.NewService(registerRepo, payrollRepo, pusher)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	bonusHandler := bonus.NewHandler(bonusService)
	employeeHandler := employee.NewHandler(employeeService)
	exportHandler := export.NewHandler(exportService)
	investorHandler := investor.NewHandler(investorService)
	payrollHandler := payroll.NewHandler(payrollService)
	posHandler := pos.NewHandler(posService)
	reconcileHandler := reconcile.NewHandler(reconcileService)
	registerHandler := register.NewHandler(registerService)
	shiftHandler := shift.NewHandler(shiftService)
	timerHandler := tabletimer.NewHandler(timerService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, enforcer)
		bonus.RegisterRoutes(api, bonusHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		export.RegisterRoutes(api, exportHandler, enforcer)
		investor.RegisterRoutes(api, investorHandler, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb)
		pos.RegisterRoutes(api, posHandler, enforcer)
		reconcile.RegisterRoutes(api, reconcileHandler, enforcer)
		register.RegisterRoutes(api, registerHandler, enforcer)
		shift.RegisterRoutes(api, shiftHandler, enforcer)
		tabletimer.RegisterRoutes(api, timerHandler, enforcer)
	}

	return nil
}
