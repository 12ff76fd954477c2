// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// WatchlistItem is one saved ticker symbol.
type WatchlistItem struct {
	Symbol    string    `gorm:"primaryKey;size:32"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
