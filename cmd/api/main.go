package main

import (
	"context"
	"time"

	"hr-records/internal/app"
	"hr-records/internal/bootstrap"
	"hr-records/internal/config"
	"hr-records/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(context.Background(), r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewZapAuditLogger("hr-records-api", cfg.AppEnv, logger)
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:           cfg.Port,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		auditLogger,
	)
}
