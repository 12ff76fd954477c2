// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"chart_backend/internal/feature/chart/adapters/yahoo"
	infrahttp "chart_backend/internal/platform/http"
	"chart_backend/internal/shared/ratelimiter"
)

// upstreamCallsPerMinute paces chart requests to the provider; the
// endpoint is unofficial and aggressive call volume gets throttled.
const upstreamCallsPerMinute = 60

// NewMarket creates a fully configured YahooMarket with HTTP client and
// call pacing.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(upstreamCallsPerMinute, time.Minute)
	return yahoo.NewYahooMarket(cfg, httpClient, limiter)
}
