package app

import (
	"net/http"

	"hr-records/internal/auth"
	"hr-records/internal/config"
	"hr-records/internal/detail"
	"hr-records/internal/employee"
	"hr-records/internal/export"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/middleware"
	"hr-records/internal/rbac"
	"hr-records/internal/rbac/infra"
	"hr-records/internal/record"
	"hr-records/internal/shared/counter"
	"hr-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	recordRepos := record.NewRepositories(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	renderer, err := export.NewPDFRenderer(cfg.PDFFontPath, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, auth.NewRedisSessionStore(rdb), auth.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.SessionTTL,
	}, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, logger)
	recordService := record.NewServiceWithOutbox(db, employeeRepo, recordRepos, outboxRepo, logger)
	detailService := detail.NewService(employeeService, recordService, logger)
	exportService := export.NewService(employeeService, recordService, renderer, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	recordHandler := record.NewHandler(recordService, logger)
	detailHandler := detail.NewHandler(detailService, logger)
	exportHandler := export.NewHandler(exportService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	auth.RegisterRoutes(&router.RouterGroup, authHandler, authService, auth.RouteConfig{
		LoginRateLimit: rate.Limit(cfg.LoginRateLimit),
		LoginBurst:     cfg.LoginBurst,
	})

	protected := router.Group("/", middleware.SessionAuth(authService), middleware.ContextLogger(logger))
	{
		employee.RegisterRoutes(protected, employeeHandler, rbacService)
		detail.RegisterRoutes(protected, detailHandler, rbacService)
		record.RegisterRoutes(protected, recordHandler, rbacService)
		export.RegisterRoutes(protected, exportHandler, rbacService, export.RouteConfig{
			RateLimit: rate.Limit(cfg.ExportRateLimit),
			Burst:     cfg.ExportBurst,
		})
	}

	return nil
}
