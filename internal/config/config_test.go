package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/medicopilot_test")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("expected default max conns 20, got %d", cfg.DBMaxConns)
	}
	if cfg.JWTExpiryMinutes != 60*24 {
		t.Errorf("expected 24h token expiry, got %d minutes", cfg.JWTExpiryMinutes)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected default base URL %s", cfg.GroqBaseURL)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")

	_, err := Load()
	if err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestConfig_AIEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.AIEnabled() {
		t.Error("expected AI disabled without a key")
	}
	cfg.GroqAPIKey = "gsk_test"
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled with a key")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Env: "production", JWTExpiryMinutes: 60}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing JWT_SECRET in production")
	}

	cfg.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for short JWT_SECRET")
	}

	cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.JWTExpiryMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive expiry")
	}
}

func TestConfig_IsDev(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDev() {
		t.Error("expected IsDev true")
	}
	cfg.Env = "production"
	if cfg.IsDev() {
		t.Error("expected IsDev false")
	}
}
