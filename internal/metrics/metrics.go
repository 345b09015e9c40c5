package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendwatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendwatch_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Ingestion
	FeedRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendwatch_feed_runs_total",
			Help: "Feed source runs by result",
		},
		[]string{"result"},
	)

	IngestionEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trendwatch_ingestion_events_total",
			Help: "New feed items turned into ingestion events",
		},
	)

	EventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trendwatch_events_published_total",
			Help: "Ingestion events published to the queue",
		},
	)

	// Matching
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendwatch_matcher_batches_total",
			Help: "Consumed event batches by result",
		},
		[]string{"result"},
	)

	MentionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendwatch_mentions_total",
			Help: "Mention inserts by result",
		},
		[]string{"result"},
	)

	KeywordCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendwatch_keyword_cache_total",
			Help: "Active keyword cache lookups by result",
		},
		[]string{"result"},
	)

	// Aggregation
	AggregatesUpsertedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trendwatch_aggregates_upserted_total",
			Help: "Daily aggregate rows written",
		},
	)
)
