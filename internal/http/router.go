// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"karvon/internal/http/handlers"
	"karvon/internal/http/middleware"
)

func NewRouter(predict *handlers.PredictHandler, location *handlers.LocationHandler) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/api/predict", predict.Predict)
	r.POST("/api/predict", predict.Predict)

	r.PUT("/api/drivers/:id/location", location.Update)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
