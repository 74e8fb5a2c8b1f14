package config

import (
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}
	if cfg.Storage.Backend != StorageBackendFile {
		t.Fatalf("expected file backend by default, got %q", cfg.Storage.Backend)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if got := cfg.AuthRateLimit.LoginWindow; got != time.Minute {
		t.Fatalf("expected login window 1m, got %v", got)
	}
	if cfg.JWT.RefreshTokenTTL() != 43200*time.Minute {
		t.Fatalf("unexpected refresh ttl %v", cfg.JWT.RefreshTokenTTL())
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("HONEYSHOP_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_UnknownStorageBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("HONEYSHOP_STORAGE_BACKEND", "mainframe")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown storage backend to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HONEYSHOP_APP_ENV", "prod")
	t.Setenv("HONEYSHOP_APP_PORT", "8081")
	t.Setenv("HONEYSHOP_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("HONEYSHOP_JWT_SECRET", "secret")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
