package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: felipe-backend)
	JWTSecret string // Required: HS256 signing secret for access tokens
	TokenTTL  time.Duration // Optional: access token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./felipe.db)
	RedisURL     string // Optional: redis connection URL; cache disabled when empty

	AIBaseURL string        // Optional: base URL of the generation service (default: http://mcp-server:3001)
	AITimeout time.Duration // Optional: per-request AI timeout (default: 30s)

	SupabaseURL        string // Optional: carried for deploy parity, unused by the server
	SupabaseServiceKey string // Optional: carried for deploy parity, unused by the server

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("FELIPE_ISSUER", "felipe-backend"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("FELIPE_TOKEN_TTL", 24*time.Hour),
		DatabaseFile: getEnvOrDefault(
			"FELIPE_DATABASE_FILE",
			"felipe.db",
		), // Default to ./felipe.db change this later
		RedisURL:            os.Getenv("REDIS_URL"), // Optional: cache disabled when unset
		AIBaseURL:           getEnvOrDefault("AI_BASE_URL", "http://mcp-server:3001"),
		AITimeout:           getEnvDurationOrDefault("AI_TIMEOUT", 30*time.Second),
		SupabaseURL:         os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey:  os.Getenv("SUPABASE_SERVICE_KEY"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
