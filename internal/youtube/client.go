// Package youtube provides a YouTube Data API v3 client abstracted behind
// interfaces for testability.
package youtube

import (
	"context"
	"errors"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// DefaultMaxResults is the number of videos a search returns when the request
// does not say otherwise.
const DefaultMaxResults = 4

var (
	// ErrQuotaExhausted is returned when the daily quota has been spent,
	// either by the local limiter or as reported by the API.
	ErrQuotaExhausted = errors.New("youtube quota exhausted")

	// ErrRateLimited is returned when the API throttles a request. Unlike
	// ErrQuotaExhausted it does not spend the daily budget.
	ErrRateLimited = errors.New("youtube rate limited")

	// ErrInvalidURL is returned when a URL does not identify a YouTube video.
	ErrInvalidURL = errors.New("not a valid YouTube URL")
)

// SearchRequest defines the parameters for a video search.
type SearchRequest struct {
	Query      string
	MaxResults int
}

// API defines the interface for interacting with the YouTube Data API.
type API interface {
	// Search returns videos matching the request, in the API's order.
	Search(ctx context.Context, req SearchRequest) (*domain.SearchResponse, error)

	// VideoTitles returns the titles of the given videos keyed by video ID.
	// Videos the API does not know are absent from the map.
	VideoTitles(ctx context.Context, ids []string) (map[string]string, error)
}
