// Package config loads application configuration from environment variables.
// All variables use the KOLEARN_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	AI          AIConfig
	Auth        AuthConfig
	Log         LogConfig
	CatalogPath string // optional directory with extra YAML goal packs
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL means
// curricula are kept in memory only.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL means practice
// chat history is kept in memory only.
type CacheConfig struct {
	URL string
}

// AIConfig holds configuration for all AI providers. Each content operation
// is pinned to one provider, so all three keys are required.
type AIConfig struct {
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Google    GoogleConfig
}

// OpenAIConfig holds OpenAI provider settings.
type OpenAIConfig struct {
	APIKey string
}

// AnthropicConfig holds Anthropic provider settings.
type AnthropicConfig struct {
	APIKey string
}

// GoogleConfig holds Google Gemini provider settings.
type GoogleConfig struct {
	APIKey string
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  int // minutes
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with KOLEARN_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("KOLEARN_SERVER_PORT", 8080),
			Host: envStr("KOLEARN_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("KOLEARN_DATABASE_URL", ""),
			MaxConns: envInt("KOLEARN_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("KOLEARN_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL: envStr("KOLEARN_CACHE_URL", ""),
		},
		AI: AIConfig{
			OpenAI: OpenAIConfig{
				APIKey: envStr("KOLEARN_AI_OPENAI_API_KEY", ""),
			},
			Anthropic: AnthropicConfig{
				APIKey: envStr("KOLEARN_AI_ANTHROPIC_API_KEY", ""),
			},
			Google: GoogleConfig{
				APIKey: envStr("KOLEARN_AI_GOOGLE_API_KEY", ""),
			},
		},
		Auth: AuthConfig{
			JWTSecret: envStr("KOLEARN_AUTH_JWT_SECRET", ""),
			TokenTTL:  envInt("KOLEARN_AUTH_TOKEN_TTL", 60*24),
		},
		Log: LogConfig{
			Level:  envStr("KOLEARN_LOG_LEVEL", "info"),
			Format: envStr("KOLEARN_LOG_FORMAT", "json"),
		},
		CatalogPath: envStr("KOLEARN_CATALOG_PATH", ""),
	}

	return cfg, nil
}

// Validate checks that required configuration is present. Provider credentials
// are checked here so a missing key fails at startup, not on first use.
func (c *Config) Validate() error {
	if c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("KOLEARN_AI_OPENAI_API_KEY is required")
	}
	if c.AI.Anthropic.APIKey == "" {
		return fmt.Errorf("KOLEARN_AI_ANTHROPIC_API_KEY is required")
	}
	if c.AI.Google.APIKey == "" {
		return fmt.Errorf("KOLEARN_AI_GOOGLE_API_KEY is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("KOLEARN_AUTH_JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("KOLEARN_AUTH_TOKEN_TTL must be positive, got %d", c.Auth.TokenTTL)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
