package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	JWTSecret     string
	TokenDuration time.Duration

	// QuestionTTL bounds how long generated questions stay answerable
	QuestionTTL time.Duration

	AllowedOrigin string

	GoogleClientID       string
	GoogleClientSecret   string
	OAuthRedirectBaseURL string
	OAuthStateSecret     string

	SESRegion      string
	SESFromAddress string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./wordquest.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenDuration: getEnvDuration("TOKEN_DURATION", 30*24*time.Hour),

		QuestionTTL: getEnvDuration("QUESTION_TTL", time.Hour),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),

		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBaseURL: getEnv("OAUTH_REDIRECT_BASE_URL", "http://localhost:8080"),
		OAuthStateSecret:     getEnv("OAUTH_STATE_SECRET", ""),

		SESRegion:      getEnv("SES_REGION", ""),
		SESFromAddress: getEnv("SES_FROM_ADDRESS", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable. Plain integers
// are treated as hours, otherwise time.ParseDuration syntax applies.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
