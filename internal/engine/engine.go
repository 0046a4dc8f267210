// Package engine implements the hofvidz workflows that sit between the HTTP
// layer, the YouTube client and the store: searching, adding videos to halls
// and backfilling missing titles.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/metrics"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const (
	// InvalidSearchMessage is the error field of a search response for a
	// blank or overlong term.
	InvalidSearchMessage = "Not Valid!"

	// MaxSearchTermLength is the longest accepted search term, in characters.
	MaxSearchTermLength = 200

	defaultBackfillBatch = 50
)

// Engine orchestrates searches, video additions and title backfill.
type Engine struct {
	store store.Store
	yt    youtube.API
	log   *slog.Logger

	maxResults    int
	backfillBatch int
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMaxResults sets how many videos a search returns.
func WithMaxResults(n int) EngineOption {
	return func(e *Engine) {
		e.maxResults = n
	}
}

// WithBackfillBatch sets how many untitled videos one backfill run handles.
func WithBackfillBatch(n int) EngineOption {
	return func(e *Engine) {
		e.backfillBatch = n
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, yt youtube.API, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:         s,
		yt:            yt,
		log:           slog.Default(),
		maxResults:    youtube.DefaultMaxResults,
		backfillBatch: defaultBackfillBatch,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// ValidSearchTerm reports whether term may be sent to YouTube.
func ValidSearchTerm(term string) bool {
	term = strings.TrimSpace(term)
	return term != "" && utf8.RuneCountInString(term) <= MaxSearchTermLength
}

// Search looks up videos for term. An invalid term is not an error: the
// response carries InvalidSearchMessage and no items.
func (eng *Engine) Search(ctx context.Context, term string) (*domain.SearchResponse, error) {
	if !ValidSearchTerm(term) {
		return &domain.SearchResponse{Error: InvalidSearchMessage}, nil
	}

	resp, err := eng.yt.Search(ctx, youtube.SearchRequest{
		Query:      strings.TrimSpace(term),
		MaxResults: eng.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("searching youtube for %q: %w", term, err)
	}
	return resp, nil
}

// AddVideo stores the video identified by rawURL in the hall. The hall must
// exist and rawURL must identify a YouTube video. A failed title lookup does
// not fail the add; the title is left for the backfill job.
func (eng *Engine) AddVideo(ctx context.Context, hallID, rawURL string) (*domain.Video, error) {
	if _, err := eng.store.GetHall(ctx, hallID); err != nil {
		return nil, fmt.Errorf("getting hall %s: %w", hallID, err)
	}

	id, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	v := &domain.Video{
		HallID:    hallID,
		URL:       domain.WatchURL(id),
		YouTubeID: id,
	}

	titles, err := eng.yt.VideoTitles(ctx, []string{id})
	switch {
	case err != nil:
		metrics.TitleLookupFailuresTotal.Inc()
		eng.log.Warn("title lookup failed, storing video without title",
			"hall_id", hallID, "youtube_id", id, "error", err)
	case titles[id] == "":
		metrics.TitleLookupFailuresTotal.Inc()
		eng.log.Warn("video not found on youtube, storing without title",
			"hall_id", hallID, "youtube_id", id)
	default:
		v.Title = titles[id]
	}

	if err := eng.store.AddVideo(ctx, v); err != nil {
		return nil, fmt.Errorf("adding video %s to hall %s: %w", id, hallID, err)
	}

	metrics.VideosAddedTotal.Inc()
	eng.log.Info("video added", "hall_id", hallID, "youtube_id", id, "video_id", v.ID)
	return v, nil
}

// BackfillTitles looks up titles for one batch of untitled videos and
// returns how many it filled in. Videos YouTube does not know stay untitled
// and are marked checked so the next batch reaches other videos.
func (eng *Engine) BackfillTitles(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.BackfillDuration.Observe(time.Since(start).Seconds())
	}()

	videos, err := eng.store.ListUntitledVideos(ctx, eng.backfillBatch)
	if err != nil {
		return 0, fmt.Errorf("listing untitled videos: %w", err)
	}
	if len(videos) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(videos))
	seen := make(map[string]bool, len(videos))
	for i := range videos {
		if !seen[videos[i].YouTubeID] {
			seen[videos[i].YouTubeID] = true
			ids = append(ids, videos[i].YouTubeID)
		}
	}

	titles, err := eng.yt.VideoTitles(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("looking up titles: %w", err)
	}

	var filled int
	var errs []error
	var unknown []string
	for i := range videos {
		if ctx.Err() != nil {
			return filled, ctx.Err()
		}

		title := titles[videos[i].YouTubeID]
		if title == "" {
			unknown = append(unknown, videos[i].ID)
			continue
		}
		if err := eng.store.UpdateVideoTitle(ctx, videos[i].ID, title); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Deleted since it was listed.
				continue
			}
			errs = append(errs, fmt.Errorf("updating title of video %s: %w", videos[i].ID, err))
			continue
		}
		filled++
	}

	// Unknown videos move behind every unchecked one in the next batch.
	if len(unknown) > 0 {
		if err := eng.store.MarkTitlesChecked(ctx, unknown); err != nil {
			errs = append(errs, fmt.Errorf("recording title checks: %w", err))
		}
	}

	metrics.TitlesBackfilledTotal.Add(float64(filled))
	eng.log.Info("title backfill complete",
		"candidates", len(videos), "filled", filled, "failed", len(errs))
	return filled, errors.Join(errs...)
}
