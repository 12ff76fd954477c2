// Package api defines response shapes shared across HTTP handlers.
package api

// ErrorResponse is the failure body returned by every endpoint. Details is
// human-readable; the HTTP status code distinguishes the failure kind.
type ErrorResponse struct {
	Details string `json:"details"`
}
