// README: Driver live-location update endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"karvon/internal/types"
)

type LocationUpdater interface {
	UpdateLocation(ctx context.Context, id types.ID, pos types.Point) error
}

type LocationHandler struct {
	matching LocationUpdater
}

func NewLocationHandler(matching LocationUpdater) *LocationHandler {
	return &LocationHandler{matching: matching}
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (h *LocationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.matching.UpdateLocation(c.Request.Context(), types.ID(id), types.Point{Lat: req.Lat, Lng: req.Lng}); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}
