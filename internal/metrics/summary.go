// internal/metrics/summary.go
// Package metrics computes aggregate statistics over the visible records.
package metrics

import (
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/samber/lo"
)

// Summary backs the stat cards above the comparison table.
type Summary struct {
	Visible    int `json:"visible"`
	Free       int `json:"free"`
	OpenSource int `json:"openSource"`
	Enabled    int `json:"enabled"`
	Total      int `json:"total"`

	// Benchmarks has one entry per benchmark metric. Unreported scores are skipped.
	Benchmarks map[compare.Metric]RunningStat `json:"benchmarks"`
	// Cost is the estimated cost at Scenario over every visible record.
	Cost     RunningStat   `json:"cost"`
	Scenario cost.Scenario `json:"scenario"`
}

// Benchmark returns the statistic for metric m.
func (s Summary) Benchmark(m compare.Metric) RunningStat {
	return s.Benchmarks[m]
}

// AverageMMLU renders the headline average, "86.4%" or N/A.
func (s Summary) AverageMMLU() string {
	return s.Benchmark(compare.MetricMMLU).Format("%.1f%%")
}

// AverageCost renders the mean estimated cost, "$0.0123" or N/A.
func (s Summary) AverageCost() string {
	return s.Cost.Format("$%.4f")
}

// Summarize aggregates visible against the whole catalog all.
func Summarize(visible, all []catalog.Model, sc cost.Scenario) Summary {
	s := Summary{
		Visible:    len(visible),
		Free:       lo.CountBy(visible, func(m catalog.Model) bool { return m.Free }),
		OpenSource: lo.CountBy(visible, func(m catalog.Model) bool { return m.OpenSource }),
		Enabled:    lo.CountBy(all, func(m catalog.Model) bool { return m.Enabled }),
		Total:      len(all),
		Benchmarks: make(map[compare.Metric]RunningStat, 4),
		Scenario:   sc,
	}

	for _, metric := range compare.BenchmarkMetrics() {
		var rs RunningStat
		for _, m := range visible {
			if v := metric.Value(m, sc); v > 0 {
				rs.Add(v)
			}
		}
		s.Benchmarks[metric] = rs
	}
	for _, m := range visible {
		s.Cost.Add(cost.EstimateScenario(m, sc).Float64())
	}
	return s
}
