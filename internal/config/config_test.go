package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_FallsBackOnUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("LOGIN_RATE_LIMIT", "0.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hr.example.com, ,https://admin.example.com")
	t.Setenv("OUTBOX_POLL_INTERVAL", "10s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 0.5, cfg.LoginRateLimit)
	assert.Equal(t, []string{"https://hr.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.OutboxPollInterval)
}
