// Wellness Tracker API
//
// REST API for recording mood, energy and stress check-ins.
//
//	@title			Wellness Tracker API
//	@version		1.0
//	@description	Record mood, energy and stress check-ins and read derived wellness summaries, daily trends and LLM reflections.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			check-ins
//	@tag.description	Wellness check-in journaling endpoints
//
//	@tag.name			wellness
//	@tag.description	Derived summaries, trends and reflections
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/api"
	"github.com/blaisecz/wellness-tracker/internal/api/handler"
	"github.com/blaisecz/wellness-tracker/internal/config"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/langfuse"
	"github.com/blaisecz/wellness-tracker/internal/llm"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/metrics"
	"github.com/blaisecz/wellness-tracker/internal/repository"
	"github.com/blaisecz/wellness-tracker/internal/seed"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/telemetry"
	"gorm.io/gorm"
)

const (
	serviceName     = "wellness-tracker-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		return err
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.CheckIn{}); err != nil {
		return err
	}
	slog.Info("database migration completed")

	if cfg.Seed {
		slog.Info("seeding database with sample data", "env", "SEED=true")
		if err := seed.Run(db); err != nil {
			return err
		}
	}

	m := metrics.New()
	wired := newApp(cfg, db, m, service.SystemClock, pingDatabase(db))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wired.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", "error", err)
	}
	if err := wired.langfuse.Close(shutdownCtx); err != nil {
		slog.Warn("langfuse close", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Warn("tracer shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

// app is the wired HTTP surface plus the collaborators shutdown has to stop.
type app struct {
	handler  http.Handler
	langfuse langfuse.Client
}

func newApp(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, clock service.Clock, health api.HealthCheck) *app {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	checkInService := service.NewCheckInService(checkInRepo, userRepo, m, clock)
	wellnessService := service.NewWellnessService(checkInRepo, userRepo, cfg.SnapshotDefaultLimit, clock)

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	prompts := langfuse.NewPromptCache(langfuse.PromptLoaderConfig{
		BaseURL:      cfg.LangfuseBaseURL,
		PublicKey:    cfg.LangfusePublicKey,
		SecretKey:    cfg.LangfuseSecretKey,
		PromptName:   cfg.LangfusePromptName,
		PromptLabel:  cfg.LangfusePromptLabel,
		FallbackPath: cfg.LangfusePromptFile,
	}, llm.DefaultSystemPrompt, cfg.PromptCacheTTL)

	// A nil *OpenAIClient must not leak into the interface
	var insightsLLM llm.InsightsLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIWellnessInsightsModel, prompts); openaiClient != nil {
		insightsLLM = openaiClient
	} else {
		slog.Warn("OPENAI_API_KEY not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(wellnessService, insightsLLM, langfuseClient, m)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService, insightsService)

	router := api.NewRouter(userHandler, checkInHandler, wellnessHandler, m, health)
	return &app{handler: router.Setup(), langfuse: langfuseClient}
}

func pingDatabase(db *gorm.DB) api.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
