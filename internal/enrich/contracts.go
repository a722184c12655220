// Package enrich looks up neighborhood facts for an address with exactly two
// web searches and regex extraction over the result text. It is a
// best-effort stage: search failures and timeouts degrade to empty fields
// and never fail a run.
package enrich

import (
	"context"
	"errors"
	"time"
)

// SearchResult is one hit returned by a web search provider.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchProvider runs one web search. Implementations must honor ctx
// cancellation and deadlines.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// ErrNotConfigured reports that no search provider is wired in. The text is
// a user-visible pipeline message.
var ErrNotConfigured = errors.New("TAVILY_API_KEY environment variable is not set. Please set it in your .env file or environment.")

// Config controls search fan-out and extraction caps.
type Config struct {
	SearchTimeout time.Duration // per-search budget
	AmenityCap    int           // max extracted amenities per category
	CacheSize     int           // cached query result sets
}
