// internal/render/cells.go
package render

import (
	"fmt"

	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
)

// Unreported is shown for a zero benchmark score.
const Unreported = "-"

// Score formats a benchmark score, "86.8" or "-".
func Score(v float64) string {
	if v <= 0 {
		return Unreported
	}
	return fmt.Sprintf("%.1f", v)
}

// MetricValue formats the absolute value of metric for m under v's scenario.
func MetricValue(v board.View, metric compare.Metric, m catalog.Model) string {
	if metric.IsCost() {
		return cost.EstimateScenario(m, v.State.Scenario).String()
	}
	return Score(metric.Value(m, v.State.Scenario))
}

// Badge renders the comparison label of model id on metric, colored by tier.
func Badge(p Palette, v board.View, metric compare.Metric, id int) string {
	c, ok := v.Comparison(metric, id)
	if !ok {
		return ""
	}
	label := c.Label(v.State.Mode)
	switch {
	case c.Free:
		return p.Free(label)
	case c.IsBaseline:
		return p.Muted(label)
	case !c.Applicable:
		return p.Muted(label)
	}
	return p.Tier(c.Tier, label)
}

// Cell joins a value and its badge: "82.4 (95%)". Free models on cost show only FREE.
func Cell(p Palette, v board.View, metric compare.Metric, m catalog.Model) string {
	c, ok := v.Comparison(metric, m.ID)
	if ok && c.Free {
		return p.Free(cost.FreeLabel)
	}
	value := MetricValue(v, metric, m)
	if !ok {
		return value
	}
	return fmt.Sprintf("%s (%s)", value, Badge(p, v, metric, m.ID))
}

// ModelName decorates a name with markers for the baseline and disabled records.
func ModelName(p Palette, v board.View, m catalog.Model) string {
	name := m.Name
	if v.HasBaseline && m.ID == v.Baseline.ID {
		name += " *"
	}
	if !m.Enabled {
		name += " " + p.Muted("(notable)")
	}
	return name
}

// Flags renders the free and open-source markers.
func Flags(p Palette, m catalog.Model) string {
	switch {
	case m.Free && m.OpenSource:
		return p.Free("free") + ", oss"
	case m.Free:
		return p.Free("free")
	case m.OpenSource:
		return "oss"
	}
	return ""
}
