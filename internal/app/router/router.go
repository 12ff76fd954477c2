// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_backend/internal/api"
	charthandler "chart_backend/internal/feature/chart/transport/handler"
	watchlisthandler "chart_backend/internal/feature/watchlist/transport/handler"
	"chart_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all application routes.
func NewRouter(chart *charthandler.ChartHandler, watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// All endpoints are method-specific; anything else is a 405, not a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, api.ErrorResponse{Details: "method not allowed"})
	})

	r.GET("/healthz", handler.Health)

	v := r.Group("/api")
	{
		v.GET("/history", chart.GetHistoryHandler)
		v.GET("/watchlist", watchlist.List)
		v.POST("/watchlist", watchlist.Add)
		v.DELETE("/watchlist/:symbol", watchlist.Remove)
	}

	return r
}
