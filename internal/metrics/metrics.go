// Package metrics defines Prometheus metrics for resale-radar.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rr"

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
		Help:      "Whether the liveness probe is passing (1) or failing (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness probe is passing (1) or failing (0).",
	})
)

// Estimation metrics.
var (
	EstimatesComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_computed_total",
		Help:      "Total number of estimates computed.",
	})

	EstimateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_duration_seconds",
		Help:      "Duration of estimate requests including market search.",
		Buckets:   prometheus.DefBuckets,
	})

	EstimateConfidenceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_confidence_total",
		Help:      "Estimates computed, labeled by confidence level.",
	}, []string{"confidence"})

	EstimateCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_cache_hits_total",
		Help:      "Total number of estimate cache hits.",
	})

	EstimateCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_cache_misses_total",
		Help:      "Total number of estimate cache misses.",
	})

	SampleSizeDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_sample_size",
		Help:      "Distribution of price sample sizes used for estimates.",
		Buckets:   prometheus.LinearBuckets(0, 5, 11), // 0, 5, 10, ..., 50
	})
)

// Market API metrics.
var (
	MarketAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_api_calls_total",
		Help:      "Total cumulative market API calls.",
	})

	MarketDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "market_daily_usage",
		Help:      "Current daily market API call count within the rolling 24-hour window.",
	})

	MarketDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_daily_limit_hits_total",
		Help:      "Total number of times the daily market API limit was reached.",
	})
)

// Refresh engine metrics.
var (
	RefreshRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_runs_total",
		Help:      "Total number of collection refresh cycles.",
	})

	RefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_errors_total",
		Help:      "Total number of item refresh failures.",
	})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "refresh_duration_seconds",
		Help:      "Duration of collection refresh cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SnapshotsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_recorded_total",
		Help:      "Total number of price snapshots recorded.",
	})
)
