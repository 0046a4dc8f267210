package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// Searcher runs a video search for a term.
type Searcher interface {
	Search(ctx context.Context, term string) (*domain.SearchResponse, error)
}

// SearchHandler serves the video search endpoint used by the search widget.
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s Searcher) *SearchHandler {
	return &SearchHandler{searcher: s}
}

// SearchInput is the query for the search endpoint. The term is deliberately
// unvalidated here: an invalid term is answered with an error field.
type SearchInput struct {
	SearchTerm string `query:"search_term" doc:"Text to search YouTube for" example:"rick astley"`
}

// RateLimitedMessage is shown when YouTube throttles a search.
const RateLimitedMessage = "YouTube is busy, try again in a moment"

// SearchOutput is the response for the search endpoint.
type SearchOutput struct {
	Body domain.SearchResponse
}

// Search proxies a search to YouTube and returns its items in order.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	resp, err := h.searcher.Search(ctx, input.SearchTerm)
	if err != nil {
		if errors.Is(err, youtube.ErrQuotaExhausted) {
			return nil, huma.Error502BadGateway("YouTube quota exhausted, try again later")
		}
		if errors.Is(err, youtube.ErrRateLimited) {
			return nil, huma.Error502BadGateway(RateLimitedMessage)
		}
		return nil, huma.Error502BadGateway("YouTube API error: " + err.Error())
	}
	if resp == nil {
		resp = &domain.SearchResponse{}
	}
	return &SearchOutput{Body: *resp}, nil
}

// RegisterSearchRoutes registers the search endpoint with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-videos",
		Method:      http.MethodGet,
		Path:        "/video/search/",
		Summary:     "Search YouTube videos",
		Description: "Returns up to four matching videos. A blank or overlong term yields an error field instead of items.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Search)
}
