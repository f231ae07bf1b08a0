package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EstimatesRate returns a timeseries panel showing estimates computed per
// minute.
func EstimatesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimates / min").
		Description("Rate of value estimates computed per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`rr:estimates:rate5m * 60`, "estimates/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimateLatency returns a timeseries panel showing p50 and p95 estimate
// latencies including the market search round trip.
func EstimateLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimate Duration").
		Description("Estimate duration percentiles including market search").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(rr_estimate_duration_seconds_bucket{job="resale-radar"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(rr_estimate_duration_seconds_bucket{job="resale-radar"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CacheHitRatio returns a timeseries panel showing the estimate cache hit
// percentage.
func CacheHitRatio() *timeseries.PanelBuilder {
	expr := `sum(rate(rr_estimate_cache_hits_total{job="resale-radar"}[5m])) / (sum(rate(rr_estimate_cache_hits_total{job="resale-radar"}[5m])) + sum(rate(rr_estimate_cache_misses_total{job="resale-radar"}[5m]))) * 100`
	return timeseries.NewPanelBuilder().
		Title("Cache Hit %").
		Description("Percentage of estimates served from cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(expr, "hit %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
