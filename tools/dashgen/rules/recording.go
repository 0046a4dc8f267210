package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "hofvidz-recording-rules",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "hofvidz-recording",
					Rules: []Rule{
						{
							Record: "hofvidz:http_requests:rate5m",
							Expr:   `sum(rate(hofvidz_http_requests_total[5m]))`,
						},
						{
							Record: "hofvidz:http_errors:rate5m",
							Expr:   `sum(rate(hofvidz_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "hofvidz:youtube_api_calls:rate5m",
							Expr:   `sum by (endpoint) (rate(hofvidz_youtube_api_calls_total[5m]))`,
						},
						{
							Record: "hofvidz:youtube_api_errors:rate5m",
							Expr:   `sum by (endpoint) (rate(hofvidz_youtube_api_errors_total[5m]))`,
						},
						{
							Record: "hofvidz:search_cache_hits:rate5m",
							Expr:   `sum(rate(hofvidz_search_cache_hits_total[5m]))`,
						},
						{
							Record: "hofvidz:search_cache_misses:rate5m",
							Expr:   `sum(rate(hofvidz_search_cache_misses_total[5m]))`,
						},
						{
							Record: "hofvidz:title_lookup_failures:rate5m",
							Expr:   `sum(rate(hofvidz_title_lookup_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
