package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-records/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandler_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("disabled without origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://hr.example.com")
		w := httptest.NewRecorder()

		Handler(router, ServerConfig{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://hr.example.com")
		w := httptest.NewRecorder()

		Handler(router, ServerConfig{AllowedOrigins: []string{"https://hr.example.com"}}).ServeHTTP(w, req)

		assert.Equal(t, "https://hr.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		Handler(router, ServerConfig{AllowedOrigins: []string{"https://hr.example.com"}}).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestZapAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewZapAuditLogger("hr-records-api", "test", zap.New(core))
	audit.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	audit.Log(ctx, AuditLog{
		Action:  AuditServerShutdown,
		Message: "HR records API shutting down",
		Meta:    map[string]any{"reason": "signal terminated", "port": "3000"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "HR records API shutting down", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "hr-records-api", fields["service"])
	assert.Equal(t, "test", fields["environment"])
	assert.Equal(t, AuditServerShutdown, fields["action"])
	assert.Equal(t, "REQ-1", fields["request_id"])
	assert.Equal(t, "3000", fields["port"])
	assert.Equal(t, "signal terminated", fields["reason"])
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), fields["occurred_at"])
}

func TestStoppedEntry(t *testing.T) {
	graceful := stoppedEntry("3000", nil)
	assert.Equal(t, AuditServerStopped, graceful.Action)
	assert.Equal(t, true, graceful.Meta["graceful"])
	assert.NotContains(t, graceful.Meta, "error")

	forced := stoppedEntry("3000", context.DeadlineExceeded)
	assert.Equal(t, false, forced.Meta["graceful"])
	assert.Equal(t, "context deadline exceeded", forced.Meta["error"])
}
