package main

import (
	"context"
	"log"
	"time"

	"github.com/anonto42/cinelog/backend/internal/cache"
	"github.com/anonto42/cinelog/backend/internal/router"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/anonto42/cinelog/backend/pkg/config"
	"github.com/anonto42/cinelog/backend/pkg/tmdb"
	"github.com/anonto42/cinelog/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if closer := config.SetupLogging(cfg.Log); closer != nil {
		defer closer.Close()
	}

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	catalog, err := newCatalog(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize catalog cache: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.SQL, catalog); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// newCatalog builds the TMDB client and wraps it in the configured response cache
func newCatalog(cfg *config.Config, db *config.DB) (services.CatalogSource, error) {
	client := tmdb.New(tmdb.Options{
		BaseURL:         cfg.TMDBBaseURL,
		ReadAccessToken: cfg.TMDBReadAccessToken,
		APIKey:          cfg.TMDBAPIKey,
		Language:        cfg.TMDBLanguage,
		Timeout:         cfg.TMDBTimeout,
	})

	switch cfg.CatalogCache {
	case "memory":
		log.Printf("Catalog cache: memory (size %d, ttl %s)", cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
		return tmdb.NewCachedClient(client, cache.NewMemory(cfg.CatalogCacheSize, cfg.CatalogCacheTTL)), nil
	case "mongo":
		mc := cache.NewMongo(db.Mongo.Database(cfg.MongoDatabase), cfg.CatalogCacheTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mc.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		log.Printf("Catalog cache: mongo (ttl %s)", cfg.CatalogCacheTTL)
		return tmdb.NewCachedClient(client, mc), nil
	case "redis":
		log.Printf("Catalog cache: redis (ttl %s)", cfg.CatalogCacheTTL)
		return tmdb.NewCachedClient(client, cache.NewRedis(db.Redis, cfg.CatalogCacheTTL)), nil
	}
	log.Println("Catalog cache disabled.")
	return client, nil
}
