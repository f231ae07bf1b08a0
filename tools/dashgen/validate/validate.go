// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to unknown metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors are syntax problems that make
// an expression unusable; Warnings flag metrics not present in the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Dashboard validates every query expression in a built dashboard against
// the known metric set.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return result
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("parsing dashboard JSON: %v", err))
		return result
	}

	result.merge(Exprs(collectExprs(generic), known))
	return result
}

// Exprs validates a list of PromQL expressions against the known metric set.
func Exprs(exprs []string, known map[string]bool) Result {
	var result Result
	for _, expr := range exprs {
		parsed, err := parser.ParseExpr(expr)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid PromQL %q: %v", expr, err))
			continue
		}
		parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
			vs, ok := node.(*parser.VectorSelector)
			if !ok || vs.Name == "" {
				return nil
			}
			if !knownMetric(vs.Name, known) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
			}
			return nil
		})
	}
	return result
}

// knownMetric checks the metric name, falling back to its base name with
// histogram series suffixes stripped.
func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// collectExprs walks an arbitrary JSON structure gathering the value of
// every "expr" key. Dashboard schemas nest targets at varying depths, so a
// generic walk is simpler than mirroring the panel type hierarchy.
func collectExprs(v any) []string {
	var exprs []string
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if k == "expr" {
				if s, ok := child.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(child)...)
		}
	case []any:
		for _, child := range val {
			exprs = append(exprs, collectExprs(child)...)
		}
	}
	return exprs
}
