package main

import (
	"log"
	"os"

	"gpupos/internal/config"
	"gpupos/internal/seed"
	"gpupos/internal/storage"
	inventorystore "gpupos/internal/store/inventory"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	snapshots, err := storage.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalf("open snapshot storage: %v", err)
	}

	inventory := inventorystore.New(snapshots, logger)
	if err := seed.Apply(inventory); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
