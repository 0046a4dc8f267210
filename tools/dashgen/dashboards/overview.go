// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/RaviKishore94/hofvidz-3.0project/tools/dashgen/panels"
)

// BuildOverview constructs the hofvidz overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Hofvidz Overview").
		Uid("hofvidz-overview").
		Tags([]string{"hofvidz"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("YouTube API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrorRate()).
		WithPanel(panels.QuotaUsage()).
		WithPanel(panels.QuotaRefusals()))

	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.SearchTraffic()))

	b.WithRow(dashboard.NewRowBuilder("Halls").
		WithPanel(panels.VideosAdded()).
		WithPanel(panels.TitleLookupFailures()).
		WithPanel(panels.TitlesBackfilled()).
		WithPanel(panels.BackfillDuration()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
