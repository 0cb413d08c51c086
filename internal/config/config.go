package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port   string
	AppEnv string

	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string
	AutoMigrate bool

	RedisAddr string

	JWTSecret  string
	SessionTTL time.Duration

	// LoginRateLimit is the number of login attempts per second allowed per client IP.
	LoginRateLimit float64
	LoginBurst     int

	// ExportRateLimit is the number of exports per second allowed per signed-in user.
	ExportRateLimit float64
	ExportBurst     int

	PDFFontPath string

	KafkaBroker        string
	OutboxPollInterval time.Duration

	CORSAllowedOrigins []string

	ConnectRetries int
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() Config {
	return Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "hr_records"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		AutoMigrate: getEnvAsBool("AUTO_MIGRATE", true),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		SessionTTL: getEnvAsDuration("SESSION_TTL", 12*time.Hour),

		LoginRateLimit: getEnvAsFloat("LOGIN_RATE_LIMIT", 1),
		LoginBurst:     int(getEnvAsInt("LOGIN_BURST", 5)),

		ExportRateLimit: getEnvAsFloat("EXPORT_RATE_LIMIT", 2),
		ExportBurst:     int(getEnvAsInt("EXPORT_BURST", 5)),

		PDFFontPath: getEnv("PDF_FONT_PATH", ""),

		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		OutboxPollInterval: getEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		ConnectRetries: int(getEnvAsInt("CONNECT_RETRIES", 5)),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsList(name string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(name, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
