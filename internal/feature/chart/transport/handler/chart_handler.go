// Package handler provides the HTTP handlers for the chart feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_backend/internal/api"
	"chart_backend/internal/feature/chart/domain"
	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/transport/http/dto"
)

// ChartUsecase defines the usecase interface for chart data retrieval.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ChartUsecase interface {
	GetChart(ctx context.Context, symbol, rng, interval string) ([]entity.Bar, error)
}

// ChartHandler handles HTTP requests for chart data.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler with the given usecase.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetHistoryHandler returns the normalized bar series for a symbol as a
// JSON array in ascending time order.
//
// Example:
// GET /api/history?symbol=ABC&range=1y&interval=1d
//
// An empty array is a valid success response when upstream genuinely
// returned zero usable bars; an unrecognized symbol is a 404 instead.
func (h *ChartHandler) GetHistoryHandler(c *gin.Context) {
	symbol := c.Query("symbol")
	rng := c.Query("range")
	interval := c.Query("interval")

	bars, err := h.uc.GetChart(c.Request.Context(), symbol, rng, interval)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.BarResponse{
			Time:   b.Time.UTC().Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// writeError maps domain error kinds onto HTTP statuses. Callers switch on
// the status, never on message text.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSymbolRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Details: "symbol parameter is required"})
	case errors.Is(err, domain.ErrNoData):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Details: "no data available for symbol"})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Details: "rate limited by data provider, retry later"})
	default:
		slog.Error("chart fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Details: "failed to fetch chart data, try again later"})
	}
}
