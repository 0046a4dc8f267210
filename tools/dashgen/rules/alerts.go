package rules

import "fmt"

// QuotaWarnUnits is the quota spend that raises the high-usage alert. It is
// 80% of the default daily units.
const QuotaWarnUnits = 8000

// AlertRules returns a PrometheusRule CR containing alert rules for hofvidz
// operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "hofvidz-alerts",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "hofvidz-alerts",
					Rules: []Rule{
						alert("HofvidzDown", `absent(up{job="hofvidz"})`, "2m", "critical",
							"Hofvidz is down",
							"The hofvidz job has been absent for more than 2 minutes."),
						alert("HofvidzReadinessDown", `hofvidz_readyz_up == 0`, "2m", "critical",
							"Hofvidz readiness check is failing",
							"The readiness check has been reporting not-ready for more than 2 minutes."),
						alert("HofvidzHighErrorRate", `hofvidz:http_errors:rate5m / hofvidz:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on hofvidz",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("HofvidzYouTubeErrors", `sum(hofvidz:youtube_api_errors:rate5m) / sum(hofvidz:youtube_api_calls:rate5m) > 0.2`, "10m", "warning",
							"YouTube Data API calls are failing",
							"More than 20% of YouTube Data API calls have failed over the last 10 minutes."),
						alert("HofvidzQuotaHigh", fmt.Sprintf(`hofvidz_youtube_quota_units_used > %d`, QuotaWarnUnits), "5m", "warning",
							"YouTube quota usage is above 80%",
							fmt.Sprintf("More than %d YouTube quota units were spent in the rolling 24h window.", QuotaWarnUnits)),
						alert("HofvidzQuotaExhausted", `increase(hofvidz_youtube_quota_exhausted_total[5m]) > 0`, "0m", "critical",
							"YouTube daily quota has been exhausted",
							"Searches and title lookups are refused until the quota window resets."),
						alert("HofvidzTitleLookupFailures", `hofvidz:title_lookup_failures:rate5m > 0`, "15m", "info",
							"Videos are being stored without titles",
							"Title lookups have failed for 15 minutes. The backfill job will retry them."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert: name,
		Expr:  expr,
		For:   forDur,
		Labels: map[string]string{
			"severity": severity,
		},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
