package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"advocate_site/internal/app"
	"advocate_site/internal/config"
	"advocate_site/internal/logging"
	"advocate_site/internal/tasks"
)

func main() {
	cfg, foundEnv, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("No .env file found, using system environment")
	}

	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DisclaimerStore == config.StoreMemory {
		logger.Info("Memory store is pruned by the server process, exiting")
		return
	}

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open disclaimer store", zap.Error(err))
	}
	defer closeStore()

	registry := tasks.NewRegistry()
	tasks.DefineTasks(registry, store, cfg.DisclaimerRetention)

	if len(registry.Names()) == 0 {
		logger.Info("Nothing to do for store, exiting", zap.String("store", cfg.DisclaimerStore))
		return
	}

	logger.Info("Worker started",
		zap.Strings("tasks", registry.Names()),
		zap.Duration("interval", cfg.WorkerInterval),
	)
	registry.Run(ctx, cfg.WorkerInterval, logger)
	logger.Info("Shutting down worker...")
}
