package router

import (
	"fmt"
	"log"

	"github.com/anonto42/cinelog/backend/internal/handlers"
	"github.com/anonto42/cinelog/backend/internal/middleware"
	"github.com/anonto42/cinelog/backend/internal/repositories"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupRoutes migrates the schema, wires repositories and services, and registers every route
func SetupRoutes(e *echo.Echo, db *gorm.DB, catalog services.CatalogSource) error {
	if err := repositories.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// --- Initialize Repositories ---
	repos := repositories.New(db)

	// --- Initialize Services ---
	deckService := services.NewDeckService(repos, catalog)
	genreService := services.NewGenreService(repos, catalog)
	swipeService := services.NewSwipeService(repos)
	interactionService := services.NewInteractionService(repos)
	listService := services.NewListService(repos)
	friendshipService := services.NewFriendshipService(repos)

	// Health checks - no identity needed
	handlers.NewHealthHandler(repos).RegisterHealthRoutes(e)

	api := e.Group("")
	api.Use(middleware.UserIdentityMiddleware())

	deckHandler := handlers.NewDeckHandler(deckService, genreService)
	deckHandler.RegisterDeckRoutes(api)
	log.Println("Deck routes configured.")

	swipeHandler := handlers.NewSwipeHandler(swipeService, interactionService)
	swipeHandler.RegisterSwipeRoutes(api)
	log.Println("Swipe routes configured.")

	friendshipHandler := handlers.NewFriendshipHandler(friendshipService, listService)
	friendshipHandler.RegisterFriendshipRoutes(api)
	log.Println("Friendship routes configured.")

	listHandler := handlers.NewListHandler(listService)
	listHandler.RegisterListRoutes(api)
	log.Println("List routes configured.")

	log.Println("All routes configured.")
	return nil
}
