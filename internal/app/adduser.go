package app

import (
	"context"

	"hr-records/internal/auth"
	"hr-records/internal/config"
	"hr-records/internal/shared/connection"

	"go.uber.org/zap"
)

// AddUser creates a login account. Sessions are never touched, so no redis
// connection is opened.
func AddUser(ctx context.Context, cfg config.Config, req auth.CreateUserRequest) (auth.UserResponse, error) {
	db, err := connection.ConnectGORMWithRetry(ctx, postgresConfig(cfg), cfg.ConnectRetries)
	if err != nil {
		return auth.UserResponse{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return auth.UserResponse{}, err
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return auth.UserResponse{}, err
		}
	}

	service := auth.NewService(auth.NewRepository(db), nil, auth.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.SessionTTL,
	}, zap.L())
	return service.CreateUser(ctx, req)
}
