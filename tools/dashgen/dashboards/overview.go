// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/jcloud242/resale-radar/tools/dashgen/panels"
)

// BuildOverview constructs the Resale Radar Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Resale Radar Overview").
		Uid("rr-overview").
		Tags([]string{"rr", "resale-radar"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Market API.
	b.WithRow(dashboard.NewRowBuilder("Market API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Estimates.
	b.WithRow(dashboard.NewRowBuilder("Estimates").
		WithPanel(panels.EstimatesRate()).
		WithPanel(panels.EstimateLatency()).
		WithPanel(panels.CacheHitRatio()))

	// Row 5: Samples.
	b.WithRow(dashboard.NewRowBuilder("Samples").
		WithPanel(panels.ConfidenceBreakdown()).
		WithPanel(panels.SampleSizeDistribution()))

	// Row 6: Refresh.
	b.WithRow(dashboard.NewRowBuilder("Refresh").
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.RefreshErrors()).
		WithPanel(panels.SnapshotsRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
