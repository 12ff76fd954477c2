package main

import (
	"log"
	"os"

	"chart_backend/internal/app/di"
	"chart_backend/internal/app/router"
	charthandler "chart_backend/internal/feature/chart/transport/handler"
	chartusecase "chart_backend/internal/feature/chart/usecase"
	watchlistadapters "chart_backend/internal/feature/watchlist/adapters"
	watchlisthandler "chart_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "chart_backend/internal/feature/watchlist/usecase"
	"chart_backend/internal/platform/cache"
	infradb "chart_backend/internal/platform/db"
	infraredis "chart_backend/internal/platform/redis"
)

func main() {
	// db (watchlist persistence)
	db := infradb.OpenDB()

	// Bar cache: Redis when configured, bounded in-memory store otherwise.
	var barCache chartusecase.BarCache
	if os.Getenv("REDIS_HOST") != "" {
		if rdb, err := infraredis.NewRedisClient(); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to in-memory cache.")
			barCache = cache.NewMemoryBarCache(cache.DefaultCapacity)
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
			barCache = cache.NewRedisBarCache(rdb, 0, "bars")
		}
	} else {
		barCache = cache.NewMemoryBarCache(cache.DefaultCapacity)
	}

	// Repository
	market := di.NewMarket()
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)

	// Usecase
	chartUC := chartusecase.NewChartUsecase(market, barCache)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo)

	// Handler
	chartH := charthandler.NewChartHandler(chartUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.NewRouter(chartH, watchlistH)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
