package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chart_backend/internal/feature/chart/domain"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		ExchangeSuffix: ".NS",
		UserAgent:      defaultUserAgent,
		Timeout:        10 * time.Second,
	}
}

// chartPayload is a well-formed three-bar daily series with no splits.
// Timestamps are 2024-01-02, 2024-01-03, 2024-01-04 (UTC midnight).
const chartPayload = `{
	"chart": {
		"result": [{
			"timestamp": [1704153600, 1704240000, 1704326400],
			"indicators": {
				"quote": [{
					"open":   [100.0, 102.0, 101.5],
					"high":   [103.0, 104.0, 105.0],
					"low":    [99.0, 101.0, 100.0],
					"close":  [102.0, 103.5, 104.0],
					"volume": [10000, 12000, 9000]
				}],
				"adjclose": [{
					"adjclose": [101.504, 103.006, 103.499]
				}]
			}
		}],
		"error": null
	}
}`

func TestYahooMarket_FetchBars_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/ABC.NS" {
			t.Errorf("expected path /v8/finance/chart/ABC.NS, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("range") != "1y" {
			t.Errorf("expected range 1y, got %s", q.Get("range"))
		}
		if q.Get("interval") != "1d" {
			t.Errorf("expected interval 1d, got %s", q.Get("interval"))
		}
		if q.Get("events") != "div|split" {
			t.Errorf("expected events div|split, got %s", q.Get("events"))
		}
		if q.Get("includeAdjustedClose") != "true" {
			t.Errorf("expected includeAdjustedClose true, got %s", q.Get("includeAdjustedClose"))
		}
		if ua := r.Header.Get("User-Agent"); ua != defaultUserAgent {
			t.Errorf("expected browser-like User-Agent, got %q", ua)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(chartPayload))
	}))
	defer server.Close()

	market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)

	bars, err := market.FetchBars(context.Background(), "abc", "1y", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}

	// Ascending, unique times.
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].Time.Before(bars[i].Time) {
			t.Errorf("bars not strictly ascending at index %d", i)
		}
	}

	// Close comes from adjclose, rounded to 2 decimals.
	wantClose := []float64{101.50, 103.01, 103.50}
	for i, w := range wantClose {
		if bars[i].Close != w {
			t.Errorf("bar %d: expected close %v, got %v", i, w, bars[i].Close)
		}
	}
	if bars[0].Open != 100.0 || bars[0].Volume != 10000 {
		t.Errorf("bar 0 not preserved: %+v", bars[0])
	}
	if got := bars[0].Time.UTC().Format("2006-01-02"); got != "2024-01-02" {
		t.Errorf("expected first bar date 2024-01-02, got %s", got)
	}
}

func TestYahooMarket_FetchBars_SymbolQualification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symbol   string
		wantPath string
	}{
		{"bare symbol gets suffix", "tcs", "/v8/finance/chart/TCS.NS"},
		{"qualified symbol passes through", "7203.T", "/v8/finance/chart/7203.T"},
		{"index passes through", "^GSPC", "/v8/finance/chart/%5EGSPC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(chartPayload))
			}))
			defer server.Close()

			market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)
			if _, err := market.FetchBars(context.Background(), tt.symbol, "1y", "1d"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("expected path %s, got %s", tt.wantPath, gotPath)
			}
		})
	}
}

func TestYahooMarket_FetchBars_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"http 404 is no data", http.StatusNotFound, `{}`, domain.ErrNoData},
		{"http 429 is rate limited", http.StatusTooManyRequests, `{}`, domain.ErrRateLimited},
		{"empty result array is no data", http.StatusOK, `{"chart":{"result":[],"error":null}}`, domain.ErrNoData},
		{"null result is no data", http.StatusOK, `{"chart":{"result":null,"error":null}}`, domain.ErrNoData},
		{"in-band not found is no data", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`, domain.ErrNoData},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)
			_, err := market.FetchBars(context.Background(), "ABC", "1y", "1d")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestYahooMarket_FetchBars_UpstreamError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, "boom", http.StatusInternalServerError},
		{"unparseable payload", http.StatusOK, "<html>not json</html>", http.StatusOK},
		{"in-band api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid range"}}}`, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)
			_, err := market.FetchBars(context.Background(), "ABC", "1y", "1d")

			var ue *domain.UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *domain.UpstreamError, got %v", err)
			}
			if ue.Status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, ue.Status)
			}
		})
	}
}

func TestYahooMarket_FetchBars_DropsIncompleteBars(t *testing.T) {
	t.Parallel()

	// Middle period is missing its volume; it must vanish entirely.
	payload := `{
		"chart": {
			"result": [{
				"timestamp": [1704153600, 1704240000, 1704326400],
				"indicators": {
					"quote": [{
						"open":   [100.0, 102.0, 101.5],
						"high":   [103.0, 104.0, 105.0],
						"low":    [99.0, 101.0, 100.0],
						"close":  [102.0, 103.5, 104.0],
						"volume": [10000, null, 9000]
					}],
					"adjclose": [{"adjclose": [102.0, 103.5, 104.0]}]
				}
			}],
			"error": null
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)
	bars, err := market.FetchBars(context.Background(), "ABC", "1y", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after dropping the incomplete one, got %d", len(bars))
	}
	if bars[0].Volume != 10000 || bars[1].Volume != 9000 {
		t.Errorf("surviving bars corrupted: %+v", bars)
	}
}

func TestYahooMarket_FetchBars_ZeroUsableBarsIsEmptySuccess(t *testing.T) {
	t.Parallel()

	// A result set exists, but every period is incomplete: valid empty success.
	payload := `{
		"chart": {
			"result": [{
				"timestamp": [1704153600],
				"indicators": {
					"quote": [{
						"open": [null], "high": [null], "low": [null],
						"close": [null], "volume": [null]
					}]
				}
			}],
			"error": null
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	market := NewYahooMarket(testConfig(server.URL), server.Client(), nil)
	bars, err := market.FetchBars(context.Background(), "ABC", "1y", "1d")
	if err != nil {
		t.Fatalf("expected empty success, got error: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("expected 0 bars, got %d", len(bars))
	}
}
