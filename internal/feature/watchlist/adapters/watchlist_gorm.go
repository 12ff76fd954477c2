// Package adapters provides the repository implementations for the watchlist feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"chart_backend/internal/feature/watchlist/domain/entity"
	"chart_backend/internal/feature/watchlist/usecase"
)

// watchlistGorm is the GORM implementation of WatchlistRepository.
type watchlistGorm struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistGorm)(nil)

// NewWatchlistRepository creates a new watchlistGorm repository with the given DB connection.
func NewWatchlistRepository(db *gorm.DB) *watchlistGorm {
	return &watchlistGorm{db: db}
}

// List returns all items, oldest first.
func (r *watchlistGorm) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	var items []entity.WatchlistItem
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts a symbol if it is not already saved.
func (r *watchlistGorm) Add(ctx context.Context, symbol string) error {
	item := entity.WatchlistItem{Symbol: symbol}
	return r.db.WithContext(ctx).
		FirstOrCreate(&item, entity.WatchlistItem{Symbol: symbol}).Error
}

// Remove deletes a symbol; deleting an absent symbol is a no-op.
func (r *watchlistGorm) Remove(ctx context.Context, symbol string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.WatchlistItem{}, "symbol = ?", symbol).Error
}
