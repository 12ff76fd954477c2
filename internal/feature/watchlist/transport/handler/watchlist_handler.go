// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_backend/internal/api"
	"chart_backend/internal/feature/watchlist/usecase"
)

// WatchlistUsecase defines the usecase interface for watchlist operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	ListSymbols(ctx context.Context) ([]string, error)
	AddSymbol(ctx context.Context, symbol string) error
	RemoveSymbol(ctx context.Context, symbol string) error
}

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler with the given usecase.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// addRequest is the body of POST /api/watchlist.
type addRequest struct {
	Symbol string `json:"symbol"`
}

// List returns all saved symbols as a JSON array.
func (h *WatchlistHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Details: "failed to load watchlist"})
		return
	}
	c.JSON(http.StatusOK, symbols)
}

// Add saves a symbol. Responds 201 even when the symbol was already saved.
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Details: "request body must be JSON with a symbol field"})
		return
	}
	if err := h.uc.AddSymbol(c.Request.Context(), req.Symbol); err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Details: "symbol is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Details: "failed to save symbol"})
		return
	}
	c.Status(http.StatusCreated)
}

// Remove deletes a symbol.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	if err := h.uc.RemoveSymbol(c.Request.Context(), c.Param("symbol")); err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Details: "symbol is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Details: "failed to remove symbol"})
		return
	}
	c.Status(http.StatusNoContent)
}
