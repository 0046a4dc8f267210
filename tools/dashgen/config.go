package main

import "errors"

// KnownMetrics is the set of metric names exported by hofvidz plus recording
// rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"hofvidz_http_request_duration_seconds": true,
	"hofvidz_http_requests_total":           true,

	// Health metrics.
	"hofvidz_healthz_up": true,
	"hofvidz_readyz_up":  true,

	// YouTube Data API metrics.
	"hofvidz_youtube_api_calls_total":       true,
	"hofvidz_youtube_api_errors_total":      true,
	"hofvidz_youtube_quota_units_used":      true,
	"hofvidz_youtube_quota_exhausted_total": true,

	// Search cache metrics.
	"hofvidz_search_cache_hits_total":   true,
	"hofvidz_search_cache_misses_total": true,

	// Hall and video metrics.
	"hofvidz_videos_added_total":          true,
	"hofvidz_title_lookup_failures_total": true,
	"hofvidz_titles_backfilled_total":     true,
	"hofvidz_backfill_duration_seconds":   true,

	// Recording rules.
	"hofvidz:http_requests:rate5m":         true,
	"hofvidz:http_errors:rate5m":           true,
	"hofvidz:youtube_api_calls:rate5m":     true,
	"hofvidz:youtube_api_errors:rate5m":    true,
	"hofvidz:search_cache_hits:rate5m":     true,
	"hofvidz:search_cache_misses:rate5m":   true,
	"hofvidz:title_lookup_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
