package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// resale-radar operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "rr-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "rr-alerts",
					Rules: []Rule{
						{
							Alert: "RrDown",
							Expr:  `absent(up{job="resale-radar"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Resale Radar is down",
								"description": "The resale-radar job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RrReadinessDown",
							Expr:  `rr_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Resale Radar readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "RrHighErrorRate",
							Expr:  `rr:http_errors:rate5m / rr:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Resale Radar",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RrRefreshErrors",
							Expr:  `rr:refresh_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Item refresh errors detected",
								"description": "The refresh engine has been producing item failures for more than 5 minutes.",
							},
						},
						{
							Alert: "RrRefreshStalled",
							Expr:  `increase(rr_refresh_runs_total[24h]) == 0`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "No refresh cycle has completed in 24 hours",
								"description": "Tracked item estimates are going stale. Check the scheduler and market API quota.",
							},
						},
						{
							Alert: "RrEstimateLatencyHigh",
							Expr:  `histogram_quantile(0.95, sum(rate(rr_estimate_duration_seconds_bucket[5m])) by (le)) > 5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Estimate latency is elevated",
								"description": "The 95th percentile estimate duration has exceeded 5 seconds for 10 minutes.",
							},
						},
						{
							Alert: "RrMarketQuotaHigh",
							Expr:  `rr_market_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Market API daily usage is above 80% of the quota",
								"description": "Daily market API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "RrMarketLimitReached",
							Expr:  `increase(rr_market_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Market API daily limit has been reached",
								"description": "The eBay Browse API daily quota has been exhausted. Refresh runs are paused until reset.",
							},
						},
					},
				},
			},
		},
	}
}
