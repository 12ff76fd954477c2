// Package yahoo provides a client for the (undocumented) Yahoo Finance
// chart API and normalizes its payloads into domain bars.
package yahoo

import (
	"os"
	"time"
)

// defaultUserAgent is a browser-like identification. The chart endpoint is
// unofficial and rejects default Go client identifications.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds configuration for the Yahoo Finance chart client.
type Config struct {
	BaseURL        string        // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	ExchangeSuffix string        // National-exchange tag appended to unqualified symbols (e.g., ".NS")
	UserAgent      string        // User-Agent header sent with every request
	Timeout        time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo client configuration from environment variables,
// falling back to working defaults.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:        "https://query1.finance.yahoo.com",
		ExchangeSuffix: ".NS",
		UserAgent:      defaultUserAgent,
		Timeout:        10 * time.Second,
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	// LookupEnv so an empty value can disable the suffix entirely.
	if v, ok := os.LookupEnv("YAHOO_SUFFIX"); ok {
		cfg.ExchangeSuffix = v
	}
	if v := os.Getenv("YAHOO_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	return cfg
}
