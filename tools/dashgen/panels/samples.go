package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ConfidenceBreakdown returns a timeseries panel showing estimate rates by
// confidence level.
func ConfidenceBreakdown() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Confidence Breakdown").
		Description("Rate of estimates by confidence level").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(rr_estimate_confidence_total{job="resale-radar"}[5m])) by (confidence)`,
			"{{confidence}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SampleSizeDistribution returns a bar gauge panel showing the distribution
// of price sample sizes used for estimates.
func SampleSizeDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Sample Size Distribution").
		Description("Distribution of price sample sizes used for estimates").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(rr_estimate_sample_size_bucket{job="resale-radar"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
