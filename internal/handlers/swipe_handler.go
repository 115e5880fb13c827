package handlers

import (
	"net/http"

	"github.com/anonto42/cinelog/backend/internal/middleware"
	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// SwipeHandler handles like/nope decisions and the post-card interaction flow
type SwipeHandler struct {
	swipeService       *services.SwipeService
	interactionService *services.InteractionService
}

func NewSwipeHandler(swipeService *services.SwipeService, interactionService *services.InteractionService) *SwipeHandler {
	return &SwipeHandler{swipeService: swipeService, interactionService: interactionService}
}

func (h *SwipeHandler) RegisterSwipeRoutes(g *echo.Group) {
	g.POST("/swipe", h.CreateSwipe)
	g.GET("/swipes", h.GetSwipes)
	g.POST("/movie-interaction", h.MovieInteraction)
}

// CreateSwipe records a swipe; swiping the same movie twice is a 409
func (h *SwipeHandler) CreateSwipe(c echo.Context) error {
	var req models.CreateSwipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.swipeService.RecordSwipe(c.Request().Context(), middleware.UserID(c, req.UserID), req.MovieID, req.Decision)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SwipeHandler) GetSwipes(c echo.Context) error {
	items, err := h.swipeService.ListSwipes(c.Request().Context(), middleware.UserID(c, ""))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SwipeHandler) MovieInteraction(c echo.Context) error {
	var req models.MovieInteractionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.interactionService.RecordInteraction(c.Request().Context(), middleware.UserID(c, req.UserID), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
