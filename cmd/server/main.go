package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kolearn/kolearn/internal/ai"
	"github.com/kolearn/kolearn/internal/auth"
	"github.com/kolearn/kolearn/internal/catalog"
	"github.com/kolearn/kolearn/internal/curriculum"
	"github.com/kolearn/kolearn/internal/handlers"
	"github.com/kolearn/kolearn/internal/platform/cache"
	"github.com/kolearn/kolearn/internal/platform/config"
	"github.com/kolearn/kolearn/internal/platform/database"
	"github.com/kolearn/kolearn/internal/practice"
	"github.com/kolearn/kolearn/internal/tutor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	handler, cleanup, err := buildServer(ctx, cfg)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// buildServer assembles the application from config: AI providers, optional
// Postgres and Redis (with in-memory fallbacks), catalog, and the HTTP API.
func buildServer(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	anthropic, err := ai.NewAnthropicProvider(cfg.AI.Anthropic.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("anthropic provider: %w", err)
	}
	openAI := ai.NewOpenAIProvider(cfg.AI.OpenAI.APIKey)
	google := ai.NewGoogleProvider(cfg.AI.Google.APIKey)

	tut, err := tutor.New(tutor.Config{
		Quiz:     openAI,
		Lesson:   anthropic,
		Partner:  openAI,
		Analysis: anthropic,
		Content:  google,
		Usage:    ai.NewInMemoryUsage(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("tutor: %w", err)
	}

	readyChecks := map[string]func(context.Context) error{}
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var store curriculum.Store = curriculum.NewMemoryStore()
	if cfg.Database.URL != "" {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		cleanups = append(cleanups, db.Close)
		readyChecks["database"] = db.HealthCheck

		pgStore, err := curriculum.NewPostgresStore(ctx, db.Pool)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("curriculum store: %w", err)
		}
		store = pgStore
		slog.Info("using postgres curriculum store")
	} else {
		slog.Warn("no database configured, curricula are in-memory only")
	}

	var history practice.HistoryStore = practice.NewMemoryHistory()
	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("cache: %w", err)
		}
		cleanups = append(cleanups, func() { c.Close() })
		readyChecks["cache"] = c.HealthCheck
		history = practice.NewRedisHistory(c.Client)
		slog.Info("using redis practice history")
	} else {
		slog.Warn("no cache configured, practice history is in-memory only")
	}

	cat := catalog.Builtin()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadPacks(cat, cfg.CatalogPath)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("catalog packs: %w", err)
		}
	}

	authSvc, err := auth.NewService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("auth: %w", err)
	}

	engine, err := practice.NewEngine(tut, history)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("practice engine: %w", err)
	}

	srv, err := handlers.New(handlers.Config{
		Auth:        authSvc,
		Tutor:       tut,
		Builder:     curriculum.NewBuilder(cat),
		Store:       store,
		Catalog:     cat,
		Practice:    engine,
		ReadyChecks: readyChecks,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("handlers: %w", err)
	}

	return srv.Routes(), cleanup, nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
