// Seeds the configured database with demo users and check-ins.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blaisecz/wellness-tracker/internal/config"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/seed"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := config.NewDatabase(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
