// Command normalize is the one-shot batch phase: it reads every
// configured retailer feed, normalizes and merges them into the
// canonical catalog, and persists the result before the API starts
// serving.
package main

import (
	"context"
	"os"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/config"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/logging"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/normalize"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	catalog, err := normalize.Run(cfg, logger.With("component", "normalize"))
	if err != nil {
		logger.Error("normalization failed", "error", err)
		os.Exit(1)
	}

	fileStore := store.NewFileStore(cfg.CatalogJSON, cfg.CatalogCSV, "")
	if err := fileStore.Save(ctx, catalog); err != nil {
		logger.Error("persisting catalog failed", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog saved", "records", len(catalog), "json", cfg.CatalogJSON, "csv", cfg.CatalogCSV)

	if cfg.MongoURI != "" {
		client, err := store.Connect(ctx, cfg.MongoURI)
		if err != nil {
			logger.Error("mongo connection failed", "error", err)
			os.Exit(1)
		}
		defer client.Disconnect(ctx)

		mongoStore := store.NewMongoStore(client.Database(cfg.MongoDB).Collection("products"))
		if err := mongoStore.Save(ctx, catalog); err != nil {
			logger.Error("persisting catalog to mongo failed", "error", err)
			os.Exit(1)
		}
		logger.Info("catalog saved to mongo", "records", len(catalog))
	}
}
