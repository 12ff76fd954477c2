// Package domain defines domain-level errors for the chart feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for chart data retrieval.
// These errors represent stable outcome kinds and should be matched with
// errors.Is / errors.As by upper layers rather than by message text.
var (
	// ErrSymbolRequired indicates the caller supplied no ticker symbol.
	// No upstream call is made in this case.
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrNoData indicates the upstream provider has no data for the symbol,
	// either as an HTTP 404 or as an empty result set inside a 200 response.
	ErrNoData = errors.New("no data available for symbol")

	// ErrRateLimited indicates the upstream provider signalled throttling.
	// Callers should back off before retrying rather than retry immediately.
	ErrRateLimited = errors.New("rate limited by upstream provider")
)

// UpstreamError reports any other transport or payload failure from the
// market data provider. Status holds the upstream HTTP status when one was
// received, zero otherwise. Detail is diagnostic only and not intended for
// end-user display.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream error (http %d): %s", e.Status, e.Detail)
	}
	return "upstream error: " + e.Detail
}
