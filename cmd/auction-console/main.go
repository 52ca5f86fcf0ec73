package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/console"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/seed"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	cfg.ApplyLogging()
	// stdout belongs to the operator
	utils.SetOutput(os.Stderr)

	svc := catalog.NewCatalogService(repository.NewMemoryRepo(), catalog.WithBcryptCost(cfg.BcryptCost))
	if cfg.SeedItems {
		if n, err := seed.Populate(svc); err != nil {
			utils.Fatal("failed to seed items", map[string]any{"seeded": n, "error": err.Error()})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.NewDispatcher(svc).Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		utils.Error("console stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
