package youtube_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
)

const searchFixture = `{
  "kind": "youtube#searchListResponse",
  "items": [
    {"id": {"kind": "youtube#video", "videoId": "dQw4w9WgXcQ"},
     "snippet": {"title": "Rick Astley - Never Gonna Give You Up", "channelTitle": "Rick Astley"}},
    {"id": {"kind": "youtube#channel", "channelId": "UC123"},
     "snippet": {"title": "A channel"}},
    {"id": {"kind": "youtube#video", "videoId": "9bZkp7q19f0"},
     "snippet": {"title": "PSY &amp; Friends &quot;Gangnam&quot;", "channelTitle": "officialpsy"}}
  ]
}`

func TestDataClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantIDs    []string
		wantErr    bool
		errContain string
		errIs      error
	}{
		{
			name: "successful search skips non-video results",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(searchFixture))
			},
			wantIDs: []string{"dQw4w9WgXcQ", "9bZkp7q19f0"},
		},
		{
			name: "no items",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"kind":"youtube#searchListResponse"}`))
			},
			wantIDs: []string{},
		},
		{
			name: "quota exceeded",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The request cannot be completed because you have exceeded your quota.","errors":[{"reason":"quotaExceeded"}]}}`))
			},
			wantErr:    true,
			errIs:      youtube.ErrQuotaExhausted,
			errContain: "status 403",
		},
		{
			name: "bad api key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid.","errors":[{"reason":"badRequest"}]}}`))
			},
			wantErr:    true,
			errContain: "API key not valid",
		},
		{
			name: "non-json error body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("upstream down"))
			},
			wantErr:    true,
			errContain: "status 503",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing search response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := youtube.NewDataClient("test-key", youtube.WithBaseURL(srv.URL))
			resp, err := client.Search(context.Background(), youtube.SearchRequest{Query: "rick"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(resp.Items))
			for _, it := range resp.Items {
				ids = append(ids, it.ID.VideoID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDataClient_Search_UnescapesTitles(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer srv.Close()

	resp, err := youtube.NewDataClient("k", youtube.WithBaseURL(srv.URL)).
		Search(context.Background(), youtube.SearchRequest{Query: "psy"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, `PSY & Friends "Gangnam"`, resp.Items[1].Snippet.Title)
	assert.Equal(t, "Rick Astley", resp.Items[0].Snippet.ChannelTitle)
}

func TestDataClient_Search_QueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       youtube.SearchRequest
		wantLimit string
	}{
		{name: "default max results", req: youtube.SearchRequest{Query: "cats & dogs"}, wantLimit: "4"},
		{name: "explicit max results", req: youtube.SearchRequest{Query: "cats & dogs", MaxResults: 10}, wantLimit: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "snippet", q.Get("part"))
				assert.Equal(t, "video", q.Get("type"))
				assert.Equal(t, tt.wantLimit, q.Get("maxResults"))
				assert.Equal(t, "cats & dogs", q.Get("q"))
				assert.Equal(t, "secret", q.Get("key"))
				_, _ = w.Write([]byte(`{"items":[]}`))
			}))
			defer srv.Close()

			client := youtube.NewDataClient("secret", youtube.WithBaseURL(srv.URL+"/"))
			_, err := client.Search(context.Background(), tt.req)
			require.NoError(t, err)
		})
	}
}

func TestDataClient_VideoTitles(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))

		ids := strings.Split(r.URL.Query().Get("id"), ",")
		assert.LessOrEqual(t, len(ids), 50)

		var items []string
		for _, id := range ids {
			if id == "gone0000000" {
				continue
			}
			items = append(items, fmt.Sprintf(`{"id":%q,"snippet":{"title":"title of %s"}}`, id, id))
		}
		_, _ = w.Write([]byte(`{"items":[` + strings.Join(items, ",") + `]}`))
	}))
	defer srv.Close()

	ids := make([]string, 0, 60)
	for i := range 59 {
		ids = append(ids, fmt.Sprintf("vid%08d", i))
	}
	ids = append(ids, "gone0000000")

	titles, err := youtube.NewDataClient("k", youtube.WithBaseURL(srv.URL)).
		VideoTitles(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, titles, 59)
	assert.Equal(t, "title of vid00000007", titles["vid00000007"])
	_, ok := titles["gone0000000"]
	assert.False(t, ok)
}

func TestDataClient_Quota(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	q := youtube.NewQuotaLimiter(100, 10, 150)
	client := youtube.NewDataClient("k", youtube.WithBaseURL(srv.URL), youtube.WithQuota(q))
	assert.Same(t, q, client.Quota())

	_, err := client.Search(context.Background(), youtube.SearchRequest{Query: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(youtube.CostSearch), q.Used())

	// Second search would spend 200 of 150 units.
	_, err = client.Search(context.Background(), youtube.SearchRequest{Query: "b"})
	require.ErrorIs(t, err, youtube.ErrQuotaExhausted)
	assert.Contains(t, err.Error(), "quota:")
	assert.Equal(t, int32(1), calls.Load())

	// Title lookups are cheap enough to continue.
	_, err = client.VideoTitles(context.Background(), []string{"dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), q.Used())
}

func TestDataClient_QuotaExceededUpstreamExhaustsLimiter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota","errors":[{"reason":"dailyLimitExceeded"}]}}`))
	}))
	defer srv.Close()

	q := youtube.NewQuotaLimiter(100, 10, 10000)
	client := youtube.NewDataClient("k", youtube.WithBaseURL(srv.URL), youtube.WithQuota(q))

	_, err := client.VideoTitles(context.Background(), []string{"dQw4w9WgXcQ"})
	require.ErrorIs(t, err, youtube.ErrQuotaExhausted)
	assert.Equal(t, int64(0), q.Remaining())
}

func TestDataClient_RateLimitDoesNotExhaustQuota(t *testing.T) {
	t.Parallel()

	for _, reason := range []string{"rateLimitExceeded", "userRateLimitExceeded"} {
		t.Run(reason, func(t *testing.T) {
			t.Parallel()

			var throttled atomic.Bool
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if throttled.CompareAndSwap(false, true) {
					w.WriteHeader(http.StatusForbidden)
					_, _ = w.Write([]byte(`{"error":{"code":403,"message":"slow down","errors":[{"reason":"` + reason + `"}]}}`))
					return
				}
				_, _ = w.Write([]byte(`{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"Never Gonna Give You Up"}}]}`))
			}))
			defer srv.Close()

			q := youtube.NewQuotaLimiter(100, 10, 10000)
			client := youtube.NewDataClient("k", youtube.WithBaseURL(srv.URL), youtube.WithQuota(q))

			_, err := client.VideoTitles(context.Background(), []string{"dQw4w9WgXcQ"})
			require.ErrorIs(t, err, youtube.ErrRateLimited)
			assert.NotErrorIs(t, err, youtube.ErrQuotaExhausted)
			assert.Equal(t, int64(youtube.CostVideos), q.Used())

			titles, err := client.VideoTitles(context.Background(), []string{"dQw4w9WgXcQ"})
			require.NoError(t, err)
			assert.Equal(t, "Never Gonna Give You Up", titles["dQw4w9WgXcQ"])
			assert.Equal(t, int64(10000-2*youtube.CostVideos), q.Remaining())
		})
	}
}
