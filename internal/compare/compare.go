// internal/compare/compare.go
package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/cost"
)

// Mode selects how a comparison is labelled.
type Mode string

const (
	// ModePercent labels comparisons as a percentage of the baseline.
	ModePercent Mode = "percent"
	// ModeDelta labels comparisons as an absolute difference from the baseline.
	ModeDelta Mode = "delta"
)

// ParseMode resolves a mode name. Unknown names fall back to ModePercent with ok=false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePercent:
		return ModePercent, true
	case ModeDelta:
		return ModeDelta, true
	}
	return ModePercent, false
}

// NotApplicableLabel is shown when the baseline value is zero.
const NotApplicableLabel = "N/A"

// Comparison is one model's value of a metric relative to the baseline.
type Comparison struct {
	ModelID    int     `json:"modelId"`
	Metric     Metric  `json:"metric"`
	Value      float64 `json:"value"`
	Percent    float64 `json:"percent"`
	Delta      float64 `json:"delta"`
	Applicable bool    `json:"applicable"`
	Free       bool    `json:"free"`
	IsBaseline bool    `json:"isBaseline"`
	Tier       Tier    `json:"tier"`
}

// Label renders the comparison for a badge: "FREE", "N/A", "95%" or "-4.4".
func (c Comparison) Label(mode Mode) string {
	switch {
	case c.Free:
		return cost.FreeLabel
	case !c.Applicable:
		return NotApplicableLabel
	}
	if mode == ModeDelta {
		if c.Metric.IsCost() {
			sign := "+"
			if c.Delta < 0 {
				sign = "-"
			}
			return fmt.Sprintf("%s$%.4f", sign, math.Abs(c.Delta))
		}
		return fmt.Sprintf("%+.1f", c.Delta)
	}
	return fmt.Sprintf("%.0f%%", c.Percent)
}

// CompareToBaseline compares every visible model with baseline on metric.
// The baseline need not be in visible. Cost is estimated at sc.
func CompareToBaseline(visible []catalog.Model, baseline catalog.Model, metric Metric, sc cost.Scenario) map[int]Comparison {
	classifier := metric.Info().Classifier
	base := metric.Value(baseline, sc)

	out := make(map[int]Comparison, len(visible))
	for _, m := range visible {
		value := metric.Value(m, sc)
		c := Comparison{
			ModelID: m.ID,
			Metric:  metric,
			Value:   value,
			Delta:   value - base,
		}
		switch {
		case m.ID == baseline.ID:
			c.IsBaseline = true
			c.Applicable = true
			c.Percent = 100
			c.Delta = 0
		case metric.IsCost() && m.Free:
			c.Free = true
			c.Value = 0
		case base == 0, !metric.IsCost() && value == 0:
			// percentage undefined, or the score is unreported
		default:
			c.Applicable = true
			c.Percent = value / base * 100
			c.Tier = classifier.Classify(c.Percent)
		}
		out[m.ID] = c
	}
	return out
}

// CompareAll runs CompareToBaseline for every metric.
func CompareAll(visible []catalog.Model, baseline catalog.Model, sc cost.Scenario) map[Metric]map[int]Comparison {
	out := make(map[Metric]map[int]Comparison, len(metricTable))
	for _, metric := range Metrics() {
		out[metric] = CompareToBaseline(visible, baseline, metric, sc)
	}
	return out
}

// ResolveBaseline picks the baseline model: the record with id, else the first
// enabled record, else the first record. ok is false only for an empty catalog.
func ResolveBaseline(models []catalog.Model, id int) (catalog.Model, bool) {
	if len(models) == 0 {
		return catalog.Model{}, false
	}
	if id != 0 {
		if m, found := catalog.Find(models, id); found {
			return m, true
		}
	}
	for _, m := range models {
		if m.Enabled {
			return m, true
		}
	}
	return models[0], true
}
