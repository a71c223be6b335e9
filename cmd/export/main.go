package main

import (
	"context"
	"log"
	"time"

	"go-inventory-tracker/internal/config"
	"go-inventory-tracker/internal/jobs"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 1. Load config; --export-format and --export-dir select the output.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	syncLogs, err := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer syncLogs()

	// 2. Open store
	store, closeStore, err := repository.OpenStore(cfg)
	if err != nil {
		zap.S().Fatalw("failed to open product store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// 3. Export
	job := &jobs.ExportJob{
		Lister: service.NewInventoryService(store, nil),
		Dir:    cfg.ExportDir,
		Format: cfg.ExportFormat,
	}
	path, err := job.Run(ctx)
	if err != nil {
		zap.S().Fatalw("export failed", "error", err)
	}

	zap.S().Infof("Exported to %s", path)
}
