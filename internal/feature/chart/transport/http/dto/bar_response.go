// Package dto defines HTTP response DTOs for the chart feature.
package dto

// BarResponse is one OHLCV bar as served to the charting UI.
type BarResponse struct {
	Time   string  `json:"time"` // ISO-8601 date (YYYY-MM-DD)
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
