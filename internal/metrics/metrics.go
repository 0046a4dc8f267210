// Package metrics defines Prometheus metrics for hofvidz.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hofvidz"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness check succeeded, 0 otherwise.",
	})
)

// YouTube Data API metrics.
var (
	YouTubeAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "youtube_api_calls_total",
		Help:      "Total YouTube Data API calls by endpoint.",
	}, []string{"endpoint"})

	YouTubeAPIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "youtube_api_errors_total",
		Help:      "Total failed YouTube Data API calls by endpoint.",
	}, []string{"endpoint"})

	YouTubeQuotaUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "youtube_quota_units_used",
		Help:      "Quota units spent within the rolling 24-hour window.",
	})

	YouTubeQuotaExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "youtube_quota_exhausted_total",
		Help:      "Total calls refused because the daily quota was exhausted.",
	})
)

// Search cache metrics.
var (
	SearchCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_hits_total",
		Help:      "Total search requests served from the cache.",
	})

	SearchCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_misses_total",
		Help:      "Total search requests that went to the YouTube API.",
	})
)

// Hall and video metrics.
var (
	VideosAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_added_total",
		Help:      "Total videos added to halls.",
	})

	TitleLookupFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "title_lookup_failures_total",
		Help:      "Total videos stored without a title because the lookup failed.",
	})

	TitlesBackfilledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "titles_backfilled_total",
		Help:      "Total video titles filled in by the backfill job.",
	})

	BackfillDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backfill_duration_seconds",
		Help:      "Duration of title backfill runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
