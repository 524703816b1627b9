package main

import (
	"flag"
	"log"
	"os"

	"gpupos/internal/config"
	"gpupos/internal/importer"
	"gpupos/internal/storage"
	inventorystore "gpupos/internal/store/inventory"
)

func main() {
	var csvPath string
	flag.StringVar(&csvPath, "file", "", "path to the catalog CSV export")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if csvPath == "" {
		logger.Fatal("usage: importer -file catalog.csv")
	}

	cfg := config.FromEnv()
	snapshots, err := storage.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalf("open snapshot storage: %v", err)
	}

	inventory := inventorystore.New(snapshots, logger)
	if err := inventory.Hydrate(nil); err != nil {
		logger.Fatalf("hydrate inventory: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	count, err := importer.NewCSVImporter(f, inventory).Run()
	if err != nil {
		logger.Fatalf("import failed after %d rows: %v", count, err)
	}
	logger.Printf("imported %d gpus", count)
}
