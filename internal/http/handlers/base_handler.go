// README: Shared handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"karvon/internal/modules/region"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writePredictError maps service errors onto HTTP statuses. Unknown regions
// are client errors with the original message so the caller can fix the
// input; everything else is opaque.
func writePredictError(c *gin.Context, err error) {
	if errors.Is(err, region.ErrUnknownRegion) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
