package main

import (
	"log/slog"
	"os"

	"github.com/denonce-tg/signalement-api/internal/config"
	"github.com/denonce-tg/signalement-api/internal/database"
	"github.com/denonce-tg/signalement-api/internal/logging"
)

// One-shot provisioning: migrates the schema and inserts the default
// categories, statuses and administrator accounts.
func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := database.Seed(); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding completed",
		"admin", "admin@denonce.tg",
		"moderateur", "moderateur@denonce.tg",
	)
}
