package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// AllowedOrigins enables CORS for these origins; empty leaves CORS off.
	AllowedOrigins []string
}

// Handler wraps router with CORS when origins are configured. Credentials
// are allowed because the session travels in a cookie.
func Handler(router *gin.Engine, cfg ServerConfig) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return router
	}
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
	}).Handler(router)
}

// StartHTTPServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      Handler(router, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	startedAt := time.Now()
	go func() {
		zap.L().Info("HTTP server running", zap.String("port", cfg.Port), zap.Strings("cors_origins", cfg.AllowedOrigins))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("ListenAndServe error", zap.Error(err))
		}
	}()
	auditLogger.Log(context.Background(), AuditLog{
		Action:  AuditServerStarted,
		Message: "HR records API started",
		Meta: map[string]any{
			"port":         cfg.Port,
			"cors_origins": cfg.AllowedOrigins,
		},
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))
	auditLogger.Log(context.Background(), AuditLog{
		Action:  AuditServerShutdown,
		Message: "HR records API shutting down",
		Meta: map[string]any{
			"port":   cfg.Port,
			"reason": "signal " + sig.String(),
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("Server exited gracefully")
	}
	auditLogger.Log(context.Background(), stoppedEntry(cfg.Port, err))
}

func stoppedEntry(port string, shutdownErr error) AuditLog {
	meta := map[string]any{
		"port":     port,
		"graceful": shutdownErr == nil,
	}
	if shutdownErr != nil {
		meta["error"] = shutdownErr.Error()
	}
	return AuditLog{
		Action:  AuditServerStopped,
		Message: "HR records API stopped",
		Meta:    meta,
	}
}
