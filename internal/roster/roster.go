// Package roster defines the commerce-side participant source. The
// concrete HTTP client with its order pagination lives outside the
// core; the services consume this interface only.
package roster

import "context"

// Record is one roster participant as delivered by the commerce
// platform.
type Record struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// Source yields the current participant roster.
type Source interface {
	FetchParticipants(ctx context.Context) ([]Record, error)
}
