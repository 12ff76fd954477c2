package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"chart_backend/internal/feature/chart/adapters/yahoo/dto"
	"chart_backend/internal/feature/chart/domain"
	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
	"chart_backend/internal/shared/ratelimiter"
)

// YahooMarket is a MarketRepository implementation backed by the Yahoo
// Finance chart API. Every call is independent; no state survives a call.
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that YahooMarket implements MarketRepository.
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a new YahooMarket with the given configuration and
// HTTP client. The limiter paces upstream calls and may be nil.
func NewYahooMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client, limiter: limiter}
}

// FetchBars issues a single chart request for (symbol, range, interval) and
// returns the normalized bar series: incomplete periods dropped, splits
// applied, adjusted close used, prices rounded to 2 decimals, ascending
// upstream order preserved.
func (y *YahooMarket) FetchBars(ctx context.Context, symbol, rng, interval string) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("range", rng)
	q.Set("interval", interval)
	q.Set("events", "div|split")
	q.Set("includeAdjustedClose", "true")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		y.cfg.BaseURL, url.PathEscape(y.qualify(symbol)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Detail: err.Error()}
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	if y.limiter != nil {
		y.limiter.WaitIfNeeded()
	}

	res, err := y.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Detail: err.Error()}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNoData
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	case res.StatusCode >= 400:
		return nil, &domain.UpstreamError{Status: res.StatusCode, Detail: readDetail(res.Body)}
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &domain.UpstreamError{Status: res.StatusCode, Detail: "decode response: " + err.Error()}
	}
	if e := body.Chart.Error; e != nil {
		// Yahoo reports unknown symbols as an in-band "Not Found" error.
		if strings.EqualFold(e.Code, "not found") {
			return nil, domain.ErrNoData
		}
		return nil, &domain.UpstreamError{Status: res.StatusCode, Detail: fmt.Sprintf("%s: %s", e.Code, e.Description)}
	}
	if len(body.Chart.Result) == 0 {
		return nil, domain.ErrNoData
	}

	return normalizeResult(body.Chart.Result[0]), nil
}

// qualify maps a symbol to its exchange-qualified form. Symbols that
// already carry a qualifier (7203.T, ^GSPC, EURUSD=X) pass through.
func (y *YahooMarket) qualify(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if y.cfg.ExchangeSuffix == "" || strings.ContainsAny(s, ".^=") {
		return s
	}
	return s + y.cfg.ExchangeSuffix
}

// readDetail captures a bounded chunk of an error response body for diagnostics.
func readDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(b) == 0 {
		return "no response detail"
	}
	return string(b)
}
