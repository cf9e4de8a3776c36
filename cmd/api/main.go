package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/cache"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/catalog"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/config"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/handlers"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/logging"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/routes"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	var st store.Store
	if cfg.MongoURI != "" {
		client, err := store.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo connection failed: %v", err)
		}
		st = store.NewMongoStore(client.Database(cfg.MongoDB).Collection("products"))
	} else {
		st = store.NewFileStore(cfg.CatalogJSON, cfg.CatalogCSV, cfg.CatalogCleaned)
	}

	engine := catalog.NewEngine(st, cache.New(cfg.CacheTTL), logger.With("component", "catalog"))
	h := handlers.NewProductHandler(engine, logger.With("component", "handlers"))

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, h)

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
