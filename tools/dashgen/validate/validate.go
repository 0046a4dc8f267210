// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/common/model"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/RaviKishore94/hofvidz-3.0project/tools/dashgen/rules"
)

// Result collects validation errors and warnings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogram and summary series suffixes resolved to their base metric.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			checkPanel(&res, *p.Panel, known)
		case p.RowPanel != nil:
			for _, inner := range p.RowPanel.Panels {
				checkPanel(&res, inner, known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := ""
	if p.Title != nil {
		title = *p.Title
	}
	if title == "" {
		res.warnf("panel %s has no title", p.Type)
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", title)
	}
	for _, t := range p.Targets {
		q, ok := t.(*prometheus.Dataquery)
		if !ok {
			res.warnf("panel %q: non-prometheus target skipped", title)
			continue
		}
		checkExpr(res, "panel "+title, q.Expr, known)
	}
}

// Rules validates a PrometheusRule CR. Recording rules defined in the CR
// count as known metrics for the rest of it.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	names := make(map[string]bool, len(known))
	for k, v := range known {
		names[k] = v
	}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record != "" {
				names[r.Record] = true
			}
		}
	}

	for _, g := range cr.Spec.Groups {
		if len(g.Rules) == 0 {
			res.warnf("group %q has no rules", g.Name)
		}
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if (r.Record == "") == (r.Alert == "") {
				res.errorf("rule %q: exactly one of record or alert must be set", name)
			}
			if r.For != "" {
				if _, err := model.ParseDuration(r.For); err != nil {
					res.errorf("rule %q: invalid for duration %q: %v", name, r.For, err)
				}
			}
			checkExpr(&res, "rule "+name, r.Expr, names)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %v", where, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
