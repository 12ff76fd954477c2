// Package entity defines the domain models for the chart feature.
package entity

import "time"

// Bar represents one sampled trading period as OHLCV
// (Open, High, Low, Close, Volume) data for a stock symbol.
type Bar struct {
	Time   time.Time // Start of the sampled period; ordering key
	Open   float64   // Opening price, split-adjusted
	High   float64   // Highest price during the period, split-adjusted
	Low    float64   // Lowest price during the period, split-adjusted
	Close  float64   // Adjusted close (folds in dividends and splits)
	Volume int64     // Shares traded during the period, split-adjusted
}

// SplitEvent is a corporate action that rescales share count and price
// by Ratio from Date onward. A 2-for-1 split has Ratio 2.0.
// Derived per request from the upstream events payload; never persisted.
type SplitEvent struct {
	Date  time.Time
	Ratio float64
}
