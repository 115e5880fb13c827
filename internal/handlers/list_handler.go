package handlers

import (
	"net/http"

	"github.com/anonto42/cinelog/backend/internal/middleware"
	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ListHandler handles the master list and the watch-later list
type ListHandler struct {
	listService *services.ListService
}

func NewListHandler(listService *services.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

func (h *ListHandler) RegisterListRoutes(g *echo.Group) {
	g.GET("/master-list", h.GetMasterList)
	g.PUT("/master-list/:movie_id", h.UpdateMasterListItem)
	g.DELETE("/master-list/:movie_id", h.DeleteMasterListItem)

	g.GET("/watch-later-list", h.GetWatchLater)
	g.PUT("/watch-later-list/:movie_id", h.UpdateWatchLaterItem)
	g.DELETE("/watch-later-list/:movie_id", h.DeleteWatchLaterItem)
}

func listFilter(c echo.Context) (models.ListFilter, error) {
	genreID, err := queryInt64(c, "genre_id")
	if err != nil {
		return models.ListFilter{}, err
	}
	return models.ListFilter{GenreID: genreID, SortBy: c.QueryParam("sort_by")}, nil
}

// GetMasterList returns the caller's master list; ?genre_id=&sort_by=date_added|rating
func (h *ListHandler) GetMasterList(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}
	entries, err := h.listService.GetMasterList(c.Request().Context(), middleware.UserID(c, ""), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// UpdateMasterListItem merges rating and notes, taken from the JSON body or the query string
func (h *ListHandler) UpdateMasterListItem(c echo.Context) error {
	var req models.UpdateMasterListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Rating == nil {
		rating, err := queryFloat(c, "rating")
		if err != nil {
			return err
		}
		req.Rating = rating
	}
	if req.Notes == nil {
		req.Notes = queryString(c, "notes")
	}

	item, err := h.listService.UpdateMasterListItem(c.Request().Context(), middleware.UserID(c, req.UserID), req.MovieID, req.Rating, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ok":       true,
		"movie_id": item.MovieID,
		"rating":   item.Rating,
		"notes":    item.Notes,
	})
}

func (h *ListHandler) DeleteMasterListItem(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}
	if err := h.listService.DeleteMasterListItem(c.Request().Context(), middleware.UserID(c, ""), movieID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Movie removed from master list"})
}

// GetWatchLater returns the caller's watch-later list; ?genre_id=&sort_by=priority|date_added
func (h *ListHandler) GetWatchLater(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}
	entries, err := h.listService.GetWatchLater(c.Request().Context(), middleware.UserID(c, ""), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// UpdateWatchLaterItem sets the priority (1-5, default 1) from the JSON body or the query string
func (h *ListHandler) UpdateWatchLaterItem(c echo.Context) error {
	var req models.UpdateWatchLaterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Priority == nil {
		priority, err := queryInt(c, "priority")
		if err != nil {
			return err
		}
		req.Priority = priority
	}
	priority := models.DefaultWatchLaterPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	item, err := h.listService.UpdateWatchLaterItem(c.Request().Context(), middleware.UserID(c, req.UserID), req.MovieID, priority)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "movie_id": item.MovieID, "priority": item.Priority})
}

func (h *ListHandler) DeleteWatchLaterItem(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}
	if err := h.listService.DeleteWatchLaterItem(c.Request().Context(), middleware.UserID(c, ""), movieID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Movie removed from watch later list"})
}
