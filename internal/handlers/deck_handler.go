package handlers

import (
	"net/http"

	"github.com/anonto42/cinelog/backend/internal/deck"
	"github.com/anonto42/cinelog/backend/internal/middleware"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// DeckHandler serves swipe decks and the genre sync
type DeckHandler struct {
	deckService  *services.DeckService
	genreService *services.GenreService
}

func NewDeckHandler(deckService *services.DeckService, genreService *services.GenreService) *DeckHandler {
	return &DeckHandler{deckService: deckService, genreService: genreService}
}

func (h *DeckHandler) RegisterDeckRoutes(g *echo.Group) {
	g.GET("/deck", h.GetDeck)
	g.POST("/sync/genres", h.SyncGenres)
}

// GetDeck returns the next page of unseen movie cards; ?limit=1..100&cursor=<opaque>
func (h *DeckHandler) GetDeck(c echo.Context) error {
	limit := deck.DefaultLimit
	l, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	if l != nil {
		limit = *l
	}

	res, err := h.deckService.GetDeck(c.Request().Context(), middleware.UserID(c, ""), c.QueryParam("cursor"), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *DeckHandler) SyncGenres(c echo.Context) error {
	n, err := h.genreService.SyncGenres(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "genres_synced": n})
}
