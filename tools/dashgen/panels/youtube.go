package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing YouTube Data API calls per
// second split by endpoint.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Calls Rate").
		Description("YouTube Data API calls per second by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`hofvidz:youtube_api_calls:rate5m`, "{{endpoint}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APIErrorRate returns a timeseries panel showing failed YouTube calls as a
// percentage of all calls per endpoint.
func APIErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Error %").
		Description("Failed YouTube Data API calls as percentage of calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`hofvidz:youtube_api_errors:rate5m / hofvidz:youtube_api_calls:rate5m * 100`,
			"{{endpoint}}", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QuotaUsage returns a timeseries panel showing quota units spent with a
// threshold line at the daily limit.
func QuotaUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Quota Units vs Limit").
		Description(fmt.Sprintf("Rolling 24h YouTube quota units spent (limit: %d)", YouTubeDailyUnits)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`hofvidz_youtube_quota_units_used{job=%q}`, Job), "units", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(YouTubeDailyUnits)*0.8, float64(YouTubeDailyUnits))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QuotaRefusals returns a stat panel showing calls refused for lack of quota
// in the past 24 hours.
func QuotaRefusals() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Quota Refusals (24h)").
		Description("Calls refused because the daily quota was exhausted").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`increase(hofvidz_youtube_quota_exhausted_total{job=%q}[24h])`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
