package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gpupos/internal/config"
	"gpupos/internal/httpserver"
	"gpupos/internal/seed"
	checkoutsvc "gpupos/internal/service/checkout"
	sessionsvc "gpupos/internal/service/session"
	"gpupos/internal/storage"
	cartstore "gpupos/internal/store/cart"
	inventorystore "gpupos/internal/store/inventory"
	salesstore "gpupos/internal/store/sales"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	snapshots, err := storage.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalf("open snapshot storage: %v", err)
	}

	inventory := inventorystore.New(snapshots, logger)
	if err := inventory.Hydrate(seed.GPUs()); err != nil {
		logger.Fatalf("hydrate inventory: %v", err)
	}
	carts := cartstore.New(snapshots, logger)
	if err := carts.Hydrate(); err != nil {
		logger.Fatalf("hydrate carts: %v", err)
	}
	sales := salesstore.New(snapshots, logger)
	if err := sales.Hydrate(); err != nil {
		logger.Fatalf("hydrate sales: %v", err)
	}

	checkout := checkoutsvc.New(carts, sales, inventory, logger)
	sessions := sessionsvc.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, snapshots, httpserver.Deps{
		Inventory: inventory,
		Carts:     carts,
		Sales:     sales,
		Checkout:  checkout,
		Sessions:  sessions,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
