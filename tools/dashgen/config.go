package main

import "errors"

// KnownMetrics is the set of metric names exported by resale-radar plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"rr_http_request_duration_seconds": true,
	"rr_http_requests_total":           true,

	// Health metrics.
	"rr_healthz_up": true,
	"rr_readyz_up":  true,

	// Estimation metrics.
	"rr_estimates_computed_total":    true,
	"rr_estimate_duration_seconds":   true,
	"rr_estimate_confidence_total":   true,
	"rr_estimate_cache_hits_total":   true,
	"rr_estimate_cache_misses_total": true,
	"rr_estimate_sample_size":        true,

	// Market API metrics.
	"rr_market_api_calls_total":        true,
	"rr_market_daily_usage":            true,
	"rr_market_daily_limit_hits_total": true,

	// Refresh engine metrics.
	"rr_refresh_runs_total":       true,
	"rr_refresh_errors_total":     true,
	"rr_refresh_duration_seconds": true,
	"rr_snapshots_recorded_total": true,

	// Recording rules.
	"rr:http_requests:rate5m":    true,
	"rr:http_errors:rate5m":      true,
	"rr:estimates:rate5m":        true,
	"rr:market_api_calls:rate5m": true,
	"rr:refresh_errors:rate5m":   true,
	"rr:snapshots:rate5m":        true,

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
