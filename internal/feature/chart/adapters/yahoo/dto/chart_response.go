// Package dto defines data transfer objects for the Yahoo Finance chart API responses.
package dto

// ChartResponse represents the JSON response from the v8 chart endpoint.
// Quote arrays are parallel to Timestamp; nulls mark missing values, so
// numeric fields are decoded into pointers.
type ChartResponse struct {
	Chart struct {
		Result []Result  `json:"result"`
		Error  *APIError `json:"error"`
	} `json:"chart"`
}

// APIError is the in-band error object Yahoo returns inside a 200 response.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result holds one symbol's time series plus corporate action events.
type Result struct {
	Timestamp  []int64 `json:"timestamp"`
	Events     *Events `json:"events"`
	Indicators struct {
		Quote    []Quote    `json:"quote"`
		Adjclose []Adjclose `json:"adjclose"`
	} `json:"indicators"`
}

// Quote carries the per-index OHLCV arrays.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// Adjclose carries the dividend/split-adjusted close series.
type Adjclose struct {
	Adjclose []*float64 `json:"adjclose"`
}

// Events holds corporate actions keyed by their epoch date. Dividends are
// not used directly; their effect is already folded into adjclose upstream.
type Events struct {
	Splits    map[string]Split    `json:"splits"`
	Dividends map[string]Dividend `json:"dividends"`
}

// Split is one stock split event; Numerator/Denominator is the ratio
// (2/1 for a 2-for-1 split).
type Split struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// Dividend is one cash dividend event.
type Dividend struct {
	Date   int64   `json:"date"`
	Amount float64 `json:"amount"`
}
