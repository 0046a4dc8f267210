package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// HallsResponse wraps a paginated halls response.
type HallsResponse struct {
	Halls []domain.Hall `json:"halls"`
	Total int           `json:"total"`
}

// ListHallsParams defines query parameters for listing halls.
type ListHallsParams struct {
	Owner   string
	Limit   int
	Offset  int
	OrderBy string
}

// ListHalls returns halls matching the given parameters.
func (c *Client) ListHalls(ctx context.Context, params *ListHallsParams) (*HallsResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Owner != "" {
			q.Set("owner", params.Owner)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
		if params.OrderBy != "" {
			q.Set("order_by", params.OrderBy)
		}
	}

	path := "/api/v1/halls"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp HallsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecentHalls returns the three newest halls.
func (c *Client) RecentHalls(ctx context.Context) ([]domain.Hall, error) {
	var resp struct {
		Halls []domain.Hall `json:"halls"`
	}
	if err := c.get(ctx, "/api/v1/halls/recent", &resp); err != nil {
		return nil, err
	}
	return resp.Halls, nil
}

// GetHall returns a hall with its videos.
func (c *Client) GetHall(ctx context.Context, id string) (*domain.Hall, error) {
	var hall domain.Hall
	if err := c.get(ctx, "/api/v1/halls/"+url.PathEscape(id), &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// CreateHall creates a hall.
func (c *Client) CreateHall(ctx context.Context, title, owner string) (*domain.Hall, error) {
	body := map[string]string{"title": title}
	if owner != "" {
		body["owner"] = owner
	}

	var hall domain.Hall
	if err := c.post(ctx, "/api/v1/halls", body, &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// RenameHall changes a hall's title.
func (c *Client) RenameHall(ctx context.Context, id, title string) (*domain.Hall, error) {
	var hall domain.Hall
	if err := c.put(ctx, "/api/v1/halls/"+url.PathEscape(id), map[string]string{"title": title}, &hall); err != nil {
		return nil, err
	}
	return &hall, nil
}

// DeleteHall removes a hall and its videos.
func (c *Client) DeleteHall(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/halls/"+url.PathEscape(id), nil)
}
