package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/metrics"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const searchKeyPrefix = "hofvidz:search:"

// DefaultCacheTTL is how long search results are cached when no TTL is given.
const DefaultCacheTTL = 15 * time.Minute

// DefaultFlightTimeout bounds a shared upstream search. It runs detached from
// the callers that joined it, so one caller leaving does not fail the rest.
const DefaultFlightTimeout = 15 * time.Second

// CachedClient wraps an API and caches search results in Redis. Identical
// searches in flight at the same time share one upstream call. Cache errors
// are logged and fall through to the wrapped API.
type CachedClient struct {
	next  API
	rdb   redis.Cmdable
	ttl   time.Duration
	log   *slog.Logger
	group singleflight.Group

	flightTimeout time.Duration
}

// CacheOption configures the CachedClient.
type CacheOption func(*CachedClient)

// WithCacheTTL sets how long search results are kept.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedClient) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithFlightTimeout bounds how long a shared upstream search may run.
func WithFlightTimeout(d time.Duration) CacheOption {
	return func(c *CachedClient) {
		if d > 0 {
			c.flightTimeout = d
		}
	}
}

// WithCacheLogger sets the logger used for cache errors.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CachedClient) {
		c.log = l
	}
}

// NewCachedClient wraps next with a Redis-backed search cache.
func NewCachedClient(next API, rdb redis.Cmdable, opts ...CacheOption) *CachedClient {
	c := &CachedClient{
		next: next,
		rdb:  rdb,
		ttl:  DefaultCacheTTL,
		log:  slog.Default(),

		flightTimeout: DefaultFlightTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchKey returns the cache key for a search term.
func SearchKey(term string) string {
	return searchKeyPrefix + strings.ToLower(strings.TrimSpace(term))
}

// Search implements API.Search.
func (c *CachedClient) Search(ctx context.Context, req SearchRequest) (*domain.SearchResponse, error) {
	key := SearchKey(req.Query)

	if resp, ok := c.lookup(ctx, key); ok {
		metrics.SearchCacheHitsTotal.Inc()
		return resp, nil
	}
	metrics.SearchCacheMissesTotal.Inc()

	ch := c.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()

		resp, err := c.next.Search(fctx, req)
		if err != nil {
			return nil, err
		}
		c.store(fctx, key, resp)
		return resp, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.SearchResponse), nil
	}
}

// VideoTitles implements API.VideoTitles. Titles are not cached.
func (c *CachedClient) VideoTitles(ctx context.Context, ids []string) (map[string]string, error) {
	return c.next.VideoTitles(ctx, ids)
}

func (c *CachedClient) lookup(ctx context.Context, key string) (*domain.SearchResponse, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("search cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var resp domain.SearchResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		c.log.Warn("discarding corrupt search cache entry", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (c *CachedClient) store(ctx context.Context, key string, resp *domain.SearchResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		c.log.Warn("encoding search cache entry failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("search cache write failed", "key", key, "error", err)
	}
}
