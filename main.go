package main

import (
	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/seed"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/session"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	cfg.ApplyLogging()

	repo := repository.NewMemoryRepo()
	catalogSvc := catalog.NewCatalogService(repo, catalog.WithBcryptCost(cfg.BcryptCost))

	if cfg.SeedItems {
		prepopulateItems(catalogSvc)
	}

	router := server.SetupRouter(catalogSvc, session.NewStore())

	utils.Info("starting auction server", map[string]any{"addr": cfg.Port})
	if err := router.Run(cfg.Port); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulateItems adds sample items to the in-memory catalog
func prepopulateItems(svc *catalog.CatalogService) {
	n, err := seed.Populate(svc)
	if err != nil {
		utils.Fatal("failed to seed items", map[string]any{"seeded": n, "error": err.Error()})
	}
	utils.Info("seeded demo items", map[string]any{"count": n})
}
