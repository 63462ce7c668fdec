// Script to test Langfuse connectivity by creating a test trace and score.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/config"
	"github.com/blaisecz/wellness-tracker/internal/langfuse"
	"github.com/blaisecz/wellness-tracker/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	lfCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", lfCfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(lfCfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
	fmt.Printf("Environment: %s\n", lfCfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(lfCfg)
	if !client.IsEnabled() {
		slog.Error("langfuse client is disabled, check LANGFUSE_* env vars")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "test-user-123",
		Name:   "test-trace",
		Input: map[string]any{
			"message": "Hello from langfuse-test script",
			"time":    time.Now().Format(time.RFC3339),
		},
		Output: map[string]any{"status": "success"},
		Tags:   []string{"test", "manual"},
	})
	if err != nil {
		slog.Error("failed to create trace", "error", err)
		os.Exit(1)
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   5,
		Comment: "connectivity check",
	}); err != nil {
		slog.Error("failed to create score", "error", err)
		os.Exit(1)
	}

	if err := client.Close(ctx); err != nil {
		slog.Error("timed out waiting for langfuse", "error", err)
		os.Exit(1)
	}

	fmt.Println("Test trace sent.")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", lfCfg.BaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
