// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"
	"errors"
	"strings"

	"chart_backend/internal/feature/watchlist/domain/entity"
)

// ErrSymbolRequired is returned when an add/remove call carries no symbol.
var ErrSymbolRequired = errors.New("symbol is required")

// WatchlistRepository abstracts the persistence layer for watchlist items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WatchlistRepository interface {
	List(ctx context.Context) ([]entity.WatchlistItem, error)
	Add(ctx context.Context, symbol string) error
	Remove(ctx context.Context, symbol string) error
}

// WatchlistUsecase provides business logic for watchlist operations.
type WatchlistUsecase struct {
	repo WatchlistRepository
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given repository.
func NewWatchlistUsecase(r WatchlistRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: r}
}

// ListSymbols returns all saved symbols in insertion order.
func (u *WatchlistUsecase) ListSymbols(ctx context.Context) ([]string, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Symbol)
	}
	return out, nil
}

// AddSymbol saves a symbol. Adding an already-saved symbol is idempotent.
func (u *WatchlistUsecase) AddSymbol(ctx context.Context, symbol string) error {
	s := normalize(symbol)
	if s == "" {
		return ErrSymbolRequired
	}
	return u.repo.Add(ctx, s)
}

// RemoveSymbol deletes a symbol. Removing an absent symbol is not an error.
func (u *WatchlistUsecase) RemoveSymbol(ctx context.Context, symbol string) error {
	s := normalize(symbol)
	if s == "" {
		return ErrSymbolRequired
	}
	return u.repo.Remove(ctx, s)
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
