package config

import (
	"os"
	"testing"
)

// clearEnv unsets all KOLEARN_ environment variables for a clean test.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"KOLEARN_SERVER_PORT",
		"KOLEARN_SERVER_HOST",
		"KOLEARN_DATABASE_URL",
		"KOLEARN_DATABASE_MAX_CONNS",
		"KOLEARN_DATABASE_MIN_CONNS",
		"KOLEARN_CACHE_URL",
		"KOLEARN_AI_OPENAI_API_KEY",
		"KOLEARN_AI_ANTHROPIC_API_KEY",
		"KOLEARN_AI_GOOGLE_API_KEY",
		"KOLEARN_AUTH_JWT_SECRET",
		"KOLEARN_AUTH_TOKEN_TTL",
		"KOLEARN_LOG_LEVEL",
		"KOLEARN_LOG_FORMAT",
		"KOLEARN_CATALOG_PATH",
	}
	for _, v := range envVars {
		_ = os.Unsetenv(v)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("KOLEARN_AI_OPENAI_API_KEY", "sk-test")
	t.Setenv("KOLEARN_AI_ANTHROPIC_API_KEY", "ant-test")
	t.Setenv("KOLEARN_AI_GOOGLE_API_KEY", "goog-test")
	t.Setenv("KOLEARN_AUTH_JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty (memory store)", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("Database.MaxConns = %d, want 25", cfg.Database.MaxConns)
	}
	if cfg.Auth.TokenTTL != 60*24 {
		t.Errorf("Auth.TokenTTL = %d, want %d", cfg.Auth.TokenTTL, 60*24)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOLEARN_SERVER_PORT", "9090")
	t.Setenv("KOLEARN_DATABASE_URL", "postgres://ko:ko@localhost:5432/kolearn")
	t.Setenv("KOLEARN_CACHE_URL", "redis://localhost:6379/1")
	t.Setenv("KOLEARN_CATALOG_PATH", "/srv/goalpacks")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://ko:ko@localhost:5432/kolearn" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Cache.URL != "redis://localhost:6379/1" {
		t.Errorf("Cache.URL = %q", cfg.Cache.URL)
	}
	if cfg.CatalogPath != "/srv/goalpacks" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOLEARN_SERVER_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want fallback 8080", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*testing.T)
		wantErr bool
	}{
		{"all required present", func(t *testing.T) {}, false},
		{"missing openai key", func(t *testing.T) { os.Unsetenv("KOLEARN_AI_OPENAI_API_KEY") }, true},
		{"missing anthropic key", func(t *testing.T) { os.Unsetenv("KOLEARN_AI_ANTHROPIC_API_KEY") }, true},
		{"missing google key", func(t *testing.T) { os.Unsetenv("KOLEARN_AI_GOOGLE_API_KEY") }, true},
		{"missing jwt secret", func(t *testing.T) { os.Unsetenv("KOLEARN_AUTH_JWT_SECRET") }, true},
		{"zero token ttl", func(t *testing.T) { t.Setenv("KOLEARN_AUTH_TOKEN_TTL", "0") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			tt.mutate(t)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
