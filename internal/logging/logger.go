package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global JSON logger on stdout. Called before the
// database is up; the Postgres handler is attached later via MultiHandler.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
