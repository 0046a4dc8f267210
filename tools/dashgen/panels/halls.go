package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VideosAdded returns a stat panel showing videos added to halls in the past
// 24 hours.
func VideosAdded() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Videos Added (24h)").
		Description("Videos added to halls in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`increase(hofvidz_videos_added_total{job=%q}[24h])`, Job), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// TitleLookupFailures returns a timeseries panel showing videos stored
// without a title per minute.
func TitleLookupFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Title Lookup Failures / min").
		Description("Videos stored without a title because the lookup failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`hofvidz:title_lookup_failures:rate5m * 60`, "failures/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TitlesBackfilled returns a timeseries panel showing titles filled in by
// the backfill job.
func TitlesBackfilled() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Titles Backfilled").
		Description("Video titles filled in per hour by the backfill job").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`increase(hofvidz_titles_backfilled_total{job=%q}[1h])`, Job), "titles", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// BackfillDuration returns a timeseries panel showing the p95 backfill run
// duration.
func BackfillDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Backfill Duration (p95)").
		Description("95th percentile title backfill run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`histogram_quantile(0.95, sum(rate(hofvidz_backfill_duration_seconds_bucket{job=%q}[1h])) by (le))`, Job),
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
