package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/timkrebs/appstore-screenshots/internal/batch"
	"github.com/timkrebs/appstore-screenshots/internal/config"
	"github.com/timkrebs/appstore-screenshots/internal/models"
	"github.com/timkrebs/appstore-screenshots/internal/processor"
	"github.com/timkrebs/appstore-screenshots/internal/storage"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = buildLogger(cfg)
	slog.SetDefault(logger)

	// Generate run ID
	runID := fmt.Sprintf("run-%s", uuid.New().String()[:8])
	logger = logger.With("run_id", runID)

	// Create output store
	store := storage.New(models.OutputDirName)
	if err := store.EnsureDir(); err != nil {
		// Save retries directory creation per pair
		logger.Error("failed to prepare output directory", "error", err)
	}

	// Convert the fixed screenshot list at every App Store size
	runner := batch.NewRunner(processor.New(processor.DefaultOptions()), store, batch.Config{}, logger)
	runner.Run()
}

func buildLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
