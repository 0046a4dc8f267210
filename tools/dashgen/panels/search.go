package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a stat panel showing the share of searches served
// from the cache.
func CacheHitRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Search Cache Hit %").
		Description("Searches answered from the cache over the last 5 minutes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`hofvidz:search_cache_hits:rate5m / (hofvidz:search_cache_hits:rate5m + hofvidz:search_cache_misses:rate5m) * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SearchTraffic returns a timeseries panel showing cache hits and misses per
// second.
func SearchTraffic() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Searches").
		Description("Search requests per second by cache outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(16).
		WithTarget(PromQuery(`hofvidz:search_cache_hits:rate5m`, "hits", "A")).
		WithTarget(PromQuery(`hofvidz:search_cache_misses:rate5m`, "misses", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
