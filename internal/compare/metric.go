// internal/compare/metric.go
// Package compare derives baseline-relative percentages and tiers for catalog models.
package compare

import (
	"strings"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/cost"
)

// Metric names a value that can be compared against a baseline.
type Metric string

const (
	MetricMMLU      Metric = "mmlu"
	MetricHellaSwag Metric = "hellaswag"
	MetricHumanEval Metric = "humaneval"
	MetricGPQA      Metric = "gpqa"
	MetricCost      Metric = "cost"
)

// MetricInfo describes a metric for headers and tooltips.
type MetricInfo struct {
	Metric      Metric     `json:"metric"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Classifier  Classifier `json:"classifier"`
}

var benchmarkClassifier = Classifier{Polarity: HigherIsBetter, NearBand: 5}
var costClassifier = Classifier{Polarity: LowerIsBetter}

var metricTable = []MetricInfo{
	{MetricMMLU, "MMLU", "Massive Multitask Language Understanding - Tests knowledge across subjects like math, history, law, and medicine. Higher = smarter general knowledge.", benchmarkClassifier},
	{MetricHellaSwag, "HellaSwag", "Tests commonsense reasoning - understanding what happens next in everyday situations. Higher = better understanding of how the world works.", benchmarkClassifier},
	{MetricHumanEval, "HumanEval", "Measures coding ability - can the AI write working code? Tests on real programming problems. Higher = better at writing code.", benchmarkClassifier},
	{MetricGPQA, "GPQA", "Graduate-Level Google-Proof Q&A - Very hard science questions (graduate level). Higher = more expert-level understanding.", benchmarkClassifier},
	{MetricCost, "Cost", "Estimated cost = (input tokens x input price + output tokens x output price) / 1,000,000. Lower is better.", costClassifier},
}

// Metrics returns every metric in display order, benchmarks first.
func Metrics() []Metric {
	out := make([]Metric, len(metricTable))
	for i, info := range metricTable {
		out[i] = info.Metric
	}
	return out
}

// BenchmarkMetrics returns the four benchmark metrics.
func BenchmarkMetrics() []Metric {
	return []Metric{MetricMMLU, MetricHellaSwag, MetricHumanEval, MetricGPQA}
}

// ParseMetric resolves a metric name case-insensitively. Unknown names fall
// back to MetricMMLU with ok=false.
func ParseMetric(s string) (Metric, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range metricTable {
		if string(info.Metric) == s {
			return info.Metric, true
		}
	}
	return MetricMMLU, false
}

// Info returns the description of m. Unknown metrics describe MetricMMLU.
func (m Metric) Info() MetricInfo {
	for _, info := range metricTable {
		if info.Metric == m {
			return info
		}
	}
	return metricTable[0]
}

// Label is the short column header of m.
func (m Metric) Label() string { return m.Info().Label }

// IsCost reports whether m is the estimated-cost metric.
func (m Metric) IsCost() bool { return m == MetricCost }

// Value extracts the metric from a model. Cost is estimated at sc.
func (m Metric) Value(model catalog.Model, sc cost.Scenario) float64 {
	switch m {
	case MetricHellaSwag:
		return model.Scores.HellaSwag
	case MetricHumanEval:
		return model.Scores.HumanEval
	case MetricGPQA:
		return model.Scores.GPQA
	case MetricCost:
		return cost.EstimateScenario(model, sc).Float64()
	default:
		return model.Scores.MMLU
	}
}
