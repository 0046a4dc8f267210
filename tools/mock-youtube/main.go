// Package main implements a fake YouTube Data API v3 server for local
// development. It answers search and videos requests from a JSON fixture so
// the server runs without a real API key or quota.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	searchCost = 100
	videosCost = 1
)

type fixtureVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

type fixture struct {
	Videos []fixtureVideo `json:"videos"`
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

type searchItem struct {
	Kind string `json:"kind"`
	ID   struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

type videoItem struct {
	Kind    string  `json:"kind"`
	ID      string  `json:"id"`
	Snippet snippet `json:"snippet"`
}

// quota counts spent units. A zero limit never runs out.
type quota struct {
	mu    sync.Mutex
	limit int
	used  int
}

func (q *quota) spend(units int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.limit > 0 && q.used+units > q.limit {
		return false
	}
	q.used += units
	return true
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-youtube/testdata/videos.json", "path to videos fixture")
	dailyUnits := flag.Int("quota", 0, "units before answering quotaExceeded (0 for unlimited)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "videos", len(fx.Videos))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock YouTube server", "addr", addr, "base_url", fmt.Sprintf("http://localhost%s/youtube/v3", addr))

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx, &quota{limit: *dailyUnits})),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture, q *quota) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /youtube/v3/search", requireKey(q, searchCost, searchHandler(logger, fx)))
	mux.HandleFunc("GET /youtube/v3/videos", requireKey(q, videosCost, videosHandler(logger, fx)))
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
			"errors":  []map[string]string{{"reason": reason, "message": message}},
		},
	})
}

// requireKey rejects requests without a key and charges units against q.
func requireKey(q *quota, units int, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			writeError(w, http.StatusBadRequest, "keyInvalid", "API key not valid. Please pass a valid API key.")
			return
		}
		if !q.spend(units) {
			writeError(w, http.StatusForbidden, "quotaExceeded", "The request cannot be completed because you have exceeded your quota.")
			return
		}
		next(w, r)
	}
}

func searchHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))

		maxResults := 5
		if v, err := strconv.Atoi(r.URL.Query().Get("maxResults")); err == nil && v >= 0 && v <= 50 {
			maxResults = v
		}

		items := []searchItem{}
		for _, v := range fx.Videos {
			if len(items) >= maxResults {
				break
			}
			if q != "" && !strings.Contains(strings.ToLower(v.Title), q) {
				continue
			}
			var it searchItem
			it.Kind = "youtube#searchResult"
			it.ID.Kind = "youtube#video"
			it.ID.VideoID = v.ID
			it.Snippet = snippet{Title: v.Title, ChannelTitle: v.ChannelTitle}
			items = append(items, it)
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"kind":  "youtube#searchListResponse",
			"items": items,
		})
		logger.Info("search", "query", q, "returned", len(items), "max_results", maxResults)
	}
}

func videosHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	byID := make(map[string]fixtureVideo, len(fx.Videos))
	for _, v := range fx.Videos {
		byID[v.ID] = v
	}

	return func(w http.ResponseWriter, r *http.Request) {
		items := []videoItem{}
		for id := range strings.SplitSeq(r.URL.Query().Get("id"), ",") {
			v, ok := byID[strings.TrimSpace(id)]
			if !ok {
				continue
			}
			items = append(items, videoItem{
				Kind:    "youtube#video",
				ID:      v.ID,
				Snippet: snippet{Title: v.Title, ChannelTitle: v.ChannelTitle},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"kind":  "youtube#videoListResponse",
			"items": items,
		})
		logger.Info("videos", "requested", r.URL.Query().Get("id"), "returned", len(items))
	}
}
