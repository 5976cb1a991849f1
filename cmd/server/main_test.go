package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kolearn/kolearn/internal/platform/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Host: "127.0.0.1"},
		AI: config.AIConfig{
			OpenAI:    config.OpenAIConfig{APIKey: "sk-test"},
			Anthropic: config.AnthropicConfig{APIKey: "sk-ant-test"},
			Google:    config.GoogleConfig{APIKey: "ai-test"},
		},
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: 60},
		Log:  config.LogConfig{Level: "info", Format: "json"},
	}
}

func TestBuildServer_HealthEndpoints(t *testing.T) {
	handler, cleanup, err := buildServer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildServer() error = %v", err)
	}
	defer cleanup()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthz returns 200",
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "readyz returns 200",
			path:       "/readyz",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBuildServer_RoutesRegistered(t *testing.T) {
	handler, cleanup, err := buildServer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildServer() error = %v", err)
	}
	defer cleanup()

	// A GET against a POST-only route must be a method error, not a 404.
	req := httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/quiz status = %d, want 405", rec.Code)
	}
}
