package handlers

import (
	"errors"
	"net/http"
	"placeserver/favorites"
	"placeserver/models"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddFavoriteRequest struct {
	PlaceID uint64 `json:"placeId"`
}

// User holds the handlers behind the authenticated router.
type User struct {
	Favorites *favorites.Manager
}

func (h *User) GetFavorites(c *gin.Context, user *models.User) {
	list, err := h.Favorites.List(user.ID)
	if err != nil {
		respondFavoritesError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *User) AddFavorite(c *gin.Context, user *models.User) {
	req := AddFavoriteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil || req.PlaceID == 0 {
		c.JSON(http.StatusBadRequest, MessageResponse{"Place ID is required"})
		return
	}
	added, err := h.Favorites.Add(user.ID, req.PlaceID)
	if err != nil {
		respondFavoritesError(c, err)
		return
	}
	if added {
		c.JSON(http.StatusOK, MessageResponse{"Place added to favorites"})
	} else {
		c.JSON(http.StatusOK, MessageResponse{"Place is already in favorites"})
	}
}

func (h *User) RemoveFavorite(c *gin.Context, user *models.User) {
	placeID, err := strconv.ParseUint(c.Param("placeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{"Invalid place ID"})
		return
	}
	if _, err = h.Favorites.Remove(user.ID, placeID); err != nil {
		respondFavoritesError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{"Place removed from favorites"})
}

// respondFavoritesError maps the manager's sentinel errors to a precise 404;
// anything else is an opaque 500.
func respondFavoritesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, favorites.ErrUserNotFound),
		errors.Is(err, favorites.ErrPlaceNotFound),
		errors.Is(err, favorites.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{err.Error()})
	default:
		zap.L().Error("favorites operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, UnexpectedErrorResponse)
	}
}
