package handlers

import (
	"net/http"
	"placeserver/places"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pointers distinguish "missing" from a legitimate zero value (the equator
// exists).
type PlaceSearchRequest struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
	Radius    *float64 `form:"radius" binding:"required,min=0"`
	Name      string   `form:"name"`
	Type      string   `form:"type"`
	Page      int      `form:"page,default=1" binding:"min=1"`
	Size      int      `form:"size,default=10" binding:"min=1"`
}

type PlaceSearch struct {
	Service *places.Service
}

func (h *PlaceSearch) Search(c *gin.Context) {
	req := PlaceSearchRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{err.Error()})
		return
	}
	result, err := h.Service.Search(places.Params{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  *req.Radius,
		Name:      req.Name,
		Type:      req.Type,
		Page:      req.Page,
		Size:      req.Size,
	})
	if err != nil {
		zap.L().Error("place search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, SearchErrorResponse)
		return
	}
	c.JSON(http.StatusOK, result)
}
