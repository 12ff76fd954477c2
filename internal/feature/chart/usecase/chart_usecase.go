// Package usecase implements the business logic for chart data retrieval.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"chart_backend/internal/feature/chart/domain"
	"chart_backend/internal/feature/chart/domain/entity"
)

const (
	// DefaultRange is the time range requested when the caller omits one.
	DefaultRange = "2y"
	// DefaultInterval is the sampling interval when the caller omits one.
	DefaultInterval = "1d"
)

// MarketRepository abstracts the upstream market data provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// FetchBars retrieves the normalized bar series for a symbol.
	FetchBars(ctx context.Context, symbol, rng, interval string) ([]entity.Bar, error)
}

// BarCache abstracts the bounded response cache keyed by
// (symbol, range, interval). Implementations must be safe for concurrent
// use and must hand out values the caller can mutate freely.
type BarCache interface {
	Get(ctx context.Context, key string) ([]entity.Bar, bool)
	Put(ctx context.Context, key string, bars []entity.Bar)
}

// chartUsecase orchestrates cache lookup and upstream fetching.
type chartUsecase struct {
	market MarketRepository
	cache  BarCache
}

// NewChartUsecase creates a new chartUsecase with the given repository and cache.
func NewChartUsecase(market MarketRepository, cache BarCache) *chartUsecase {
	return &chartUsecase{market: market, cache: cache}
}

// GetChart returns the normalized bar series for (symbol, range, interval),
// serving from the cache when possible. Concurrent identical requests may
// both reach upstream; the later cache write wins, which is acceptable
// because normalized output for a given key is convergent.
func (cu *chartUsecase) GetChart(ctx context.Context, symbol, rng, interval string) ([]entity.Bar, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, domain.ErrSymbolRequired
	}
	if rng == "" {
		rng = DefaultRange
	}
	if interval == "" {
		interval = DefaultInterval
	}

	key := cacheKey(symbol, rng, interval)
	if bars, ok := cu.cache.Get(ctx, key); ok {
		return bars, nil
	}

	bars, err := cu.market.FetchBars(ctx, symbol, rng, interval)
	if err != nil {
		return nil, err
	}

	cu.cache.Put(ctx, key, bars)
	return bars, nil
}

// cacheKey builds a deterministic cache key so that distinct request
// shapes never collide and identical requests always hit.
func cacheKey(symbol, rng, interval string) string {
	return fmt.Sprintf("%s:%s:%s", safe(strings.ToUpper(symbol)), safe(rng), safe(interval))
}

// safe escapes characters that are problematic for cache keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
