package app

import (
	"context"
	"errors"

	"hr-records/internal/auth"
	"hr-records/internal/config"
	"hr-records/internal/employee"
	"hr-records/internal/messaging/kafka"
	"hr-records/internal/middleware"
	"hr-records/internal/record"
	"hr-records/internal/shared/connection"
	"hr-records/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&employee.Employee{},
		&record.Vacation{},
		&record.BusinessTrip{},
		&record.SickLeave{},
		&auth.User{},
		&counter.Counter{},
		&kafka.OutboxEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// BuildApp connects the stores, migrates when configured and registers every
// route on router. The returned cleanup closes the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	db, err := connection.ConnectGORMWithRetry(ctx, postgresConfig(cfg), cfg.ConnectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("schema migrated")
	}

	router.Use(middleware.RequestID())
	if err := registerModules(router, cfg, db, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func postgresConfig(cfg config.Config) connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		Port:     cfg.DBPort,
		SSLMode:  cfg.DBSSLMode,
	}
}

