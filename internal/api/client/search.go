package client

import (
	"context"
	"net/url"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// Search queries the video search endpoint. An invalid term is not an error:
// the server answers with the Error field set.
func (c *Client) Search(ctx context.Context, term string) (*domain.SearchResponse, error) {
	q := url.Values{}
	q.Set("search_term", term)

	var resp domain.SearchResponse
	if err := c.get(ctx, "/video/search/?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuotaStatus is the server's YouTube quota report.
type QuotaStatus struct {
	DailyUnits int64  `json:"daily_units"`
	Used       int64  `json:"used"`
	Remaining  int64  `json:"remaining"`
	ResetAt    string `json:"reset_at"`
}

// Quota returns the server's YouTube API quota status.
func (c *Client) Quota(ctx context.Context) (*QuotaStatus, error) {
	var resp QuotaStatus
	if err := c.get(ctx, "/api/v1/quota", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
