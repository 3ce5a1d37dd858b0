package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.TokenDuration != 30*24*time.Hour {
		t.Errorf("TokenDuration = %v, want 720h", cfg.TokenDuration)
	}
	if cfg.QuestionTTL != time.Hour {
		t.Errorf("QuestionTTL = %v, want 1h", cfg.QuestionTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("TOKEN_DURATION", "24")
	t.Setenv("QUESTION_TTL", "30m")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %v, want 24h", cfg.TokenDuration)
	}
	if cfg.QuestionTTL != 30*time.Minute {
		t.Errorf("QuestionTTL = %v, want 30m", cfg.QuestionTTL)
	}
}

func TestGetEnvDurationInvalid(t *testing.T) {
	t.Setenv("TOKEN_DURATION", "not-a-duration")

	cfg := Load()
	if cfg.TokenDuration != 30*24*time.Hour {
		t.Errorf("TokenDuration = %v, want the default", cfg.TokenDuration)
	}
}
