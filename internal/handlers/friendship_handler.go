package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/cinelog/backend/internal/middleware"
	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipService *services.FriendshipService
	listService       *services.ListService
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipService *services.FriendshipService, listService *services.ListService) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService: friendshipService,
		listService:       listService,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.POST("/friends/add", h.AddFriend)
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/requests", h.GetPendingRequests)
	g.POST("/friends/:friend_id/accept", h.AcceptFriend)
	g.POST("/friends/:friend_id/block", h.BlockFriend)
	g.POST("/friends/:friend_id/remove", h.RemoveFriend)
	g.GET("/friends/:friend_id/master-list", h.GetFriendMasterList)
}

// AddFriend sends a friend request by e-mail, or accepts one already sent the other way
func (h *FriendshipHandler) AddFriend(c echo.Context) error {
	var req models.CreateFriendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := h.friendshipService.AddFriend(c.Request().Context(), middleware.UserID(c, req.UserID), req.FriendEmail)
	if err != nil {
		return httpError(err)
	}

	message := fmt.Sprintf("Friend request sent to %s", req.FriendEmail)
	if status == models.FriendshipAccepted {
		message = fmt.Sprintf("You are now friends with %s", req.FriendEmail)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": message, "status": status})
}

// GetFriends lists accepted friends regardless of who sent the request
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	friends, err := h.friendshipService.ListFriends(c.Request().Context(), middleware.UserID(c, ""))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, friends)
}

func (h *FriendshipHandler) GetPendingRequests(c echo.Context) error {
	requests, err := h.friendshipService.ListPendingRequests(c.Request().Context(), middleware.UserID(c, ""))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *FriendshipHandler) AcceptFriend(c echo.Context) error {
	friendID, err := friendIDParam(c)
	if err != nil {
		return err
	}
	if err := h.friendshipService.AcceptFriend(c.Request().Context(), middleware.UserID(c, ""), friendID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Friend request accepted"})
}

func (h *FriendshipHandler) BlockFriend(c echo.Context) error {
	friendID, err := friendIDParam(c)
	if err != nil {
		return err
	}
	if err := h.friendshipService.BlockFriend(c.Request().Context(), middleware.UserID(c, ""), friendID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "User blocked"})
}

// RemoveFriend handles unfriending in either direction
func (h *FriendshipHandler) RemoveFriend(c echo.Context) error {
	friendID, err := friendIDParam(c)
	if err != nil {
		return err
	}
	if err := h.friendshipService.RemoveFriend(c.Request().Context(), middleware.UserID(c, ""), friendID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Friendship removed"})
}

// GetFriendMasterList shows an accepted friend's master list; ?genre_id= filters it
func (h *FriendshipHandler) GetFriendMasterList(c echo.Context) error {
	friendID, err := friendIDParam(c)
	if err != nil {
		return err
	}
	genreID, err := queryInt64(c, "genre_id")
	if err != nil {
		return err
	}

	entries, err := h.listService.GetFriendMasterList(c.Request().Context(), middleware.UserID(c, ""), friendID, genreID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
