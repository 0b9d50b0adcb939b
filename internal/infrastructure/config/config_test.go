package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("access TTL = %v, want 1h", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != 720*time.Hour {
		t.Errorf("refresh TTL = %v, want 720h", cfg.Auth.RefreshTokenTTL)
	}
	if cfg.Auth.PasswordMinLength != 3 {
		t.Errorf("password min = %d, want 3", cfg.Auth.PasswordMinLength)
	}
	if cfg.RateLimit.Limit != 10 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("rate limit = %d/%v, want 10/1m", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("PASSWORD_MIN_LENGTH", "8")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("ENV=production must report production")
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("access TTL = %v, want 15m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.PasswordMinLength != 8 {
		t.Errorf("password min = %d, want 8", cfg.Auth.PasswordMinLength)
	}
}
