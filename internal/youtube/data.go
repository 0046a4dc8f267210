package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/metrics"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxVideoIDs is the most IDs the videos endpoint accepts per call.
	maxVideoIDs = 50
)

// DataClient implements API using the YouTube Data API v3.
type DataClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	quota   *QuotaLimiter
}

// DataOption configures the DataClient.
type DataOption func(*DataClient)

// WithBaseURL overrides the default API root, e.g. to point at a mock server.
func WithBaseURL(u string) DataOption {
	return func(c *DataClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) DataOption {
	return func(c *DataClient) {
		c.client = hc
	}
}

// WithQuota injects a limiter that every call spends its unit cost against.
func WithQuota(q *QuotaLimiter) DataOption {
	return func(c *DataClient) {
		c.quota = q
	}
}

// NewDataClient creates a YouTube Data API client authenticated by apiKey.
func NewDataClient(apiKey string, opts ...DataOption) *DataClient {
	c := &DataClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quota returns the client's limiter, or nil if it has none.
func (c *DataClient) Quota() *QuotaLimiter {
	return c.quota
}

type searchAPIResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosAPIResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type errorAPIResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// Search implements API.Search by querying the search endpoint for videos.
// Results without a video ID are skipped.
func (c *DataClient) Search(ctx context.Context, req SearchRequest) (*domain.SearchResponse, error) {
	limit := req.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("q", req.Query)

	var apiResp searchAPIResponse
	if err := c.get(ctx, "search", CostSearch, params, &apiResp); err != nil {
		return nil, err
	}

	out := &domain.SearchResponse{Items: make([]domain.SearchItem, 0, len(apiResp.Items))}
	for _, it := range apiResp.Items {
		if it.ID.VideoID == "" {
			continue
		}
		item := domain.NewSearchItem(it.ID.VideoID, html.UnescapeString(it.Snippet.Title))
		item.Snippet.ChannelTitle = html.UnescapeString(it.Snippet.ChannelTitle)
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// VideoTitles implements API.VideoTitles, batching ids by the endpoint's limit.
func (c *DataClient) VideoTitles(ctx context.Context, ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	for start := 0; start < len(ids); start += maxVideoIDs {
		end := min(start+maxVideoIDs, len(ids))

		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("id", strings.Join(ids[start:end], ","))

		var apiResp videosAPIResponse
		if err := c.get(ctx, "videos", CostVideos, params, &apiResp); err != nil {
			return nil, err
		}
		for _, it := range apiResp.Items {
			titles[it.ID] = html.UnescapeString(it.Snippet.Title)
		}
	}
	return titles, nil
}

func (c *DataClient) get(ctx context.Context, endpoint string, cost int64, params url.Values, out any) error {
	if c.quota != nil {
		if err := c.quota.Wait(ctx, cost); err != nil {
			if errors.Is(err, ErrQuotaExhausted) {
				metrics.YouTubeQuotaExhaustedTotal.Inc()
			}
			return fmt.Errorf("quota: %w", err)
		}
		metrics.YouTubeQuotaUsed.Set(float64(c.quota.Used()))
	}
	metrics.YouTubeAPICallsTotal.WithLabelValues(endpoint).Inc()

	err := c.do(ctx, endpoint, params, out)
	if err != nil {
		metrics.YouTubeAPIErrorsTotal.WithLabelValues(endpoint).Inc()
		if errors.Is(err, ErrQuotaExhausted) && c.quota != nil {
			c.quota.Exhaust()
			metrics.YouTubeQuotaUsed.Set(float64(c.quota.Used()))
		}
	}
	return err
}

func (c *DataClient) do(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	u := c.baseURL + "/" + endpoint + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return apiError(endpoint, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	return nil
}

func apiError(endpoint string, status int, body []byte) error {
	var e errorAPIResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Error.Code == 0 {
		return fmt.Errorf("youtube %s error (status %d): %s", endpoint, status, strings.TrimSpace(string(body)))
	}
	for _, r := range e.Error.Errors {
		switch r.Reason {
		case "quotaExceeded", "dailyLimitExceeded":
			return fmt.Errorf("youtube %s error (status %d): %w: %s", endpoint, status, ErrQuotaExhausted, e.Error.Message)
		case "rateLimitExceeded", "userRateLimitExceeded":
			return fmt.Errorf("youtube %s error (status %d): %w: %s", endpoint, status, ErrRateLimited, e.Error.Message)
		}
	}
	return fmt.Errorf("youtube %s error (status %d): %s", endpoint, status, e.Error.Message)
}
