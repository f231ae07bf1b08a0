package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "rr-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "rr-recording",
					Rules: []Rule{
						{
							Record: "rr:http_requests:rate5m",
							Expr:   `sum(rate(rr_http_requests_total[5m]))`,
						},
						{
							Record: "rr:http_errors:rate5m",
							Expr:   `sum(rate(rr_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "rr:estimates:rate5m",
							Expr:   `rate(rr_estimates_computed_total[5m])`,
						},
						{
							Record: "rr:market_api_calls:rate5m",
							Expr:   `rate(rr_market_api_calls_total[5m])`,
						},
						{
							Record: "rr:refresh_errors:rate5m",
							Expr:   `rate(rr_refresh_errors_total[5m])`,
						},
						{
							Record: "rr:snapshots:rate5m",
							Expr:   `rate(rr_snapshots_recorded_total[5m])`,
						},
					},
				},
			},
		},
	}
}
