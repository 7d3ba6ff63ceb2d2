// internal/board/board.go
// Package board runs the query, comparison, cost and summary steps for one state.
package board

import (
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/metrics"
	"github.com/mwiater/llmcompare/internal/query"
)

// View is everything a front end needs to draw the comparison board.
type View struct {
	State           query.State                                   `json:"state"`
	Visible         []catalog.Model                               `json:"visible"`
	Baseline        catalog.Model                                 `json:"baseline"`
	HasBaseline     bool                                          `json:"hasBaseline"`
	BaselineVisible bool                                          `json:"baselineVisible"`
	Comparisons     map[compare.Metric]map[int]compare.Comparison `json:"comparisons"`
	ScenarioCosts   map[int]cost.Amount                           `json:"scenarioCosts"`
	Profiles        []cost.TaskProfile                            `json:"profiles"`
	TaskCosts       []cost.TaskRow                                `json:"taskCosts"`
	Summary         metrics.Summary                               `json:"summary"`
	Notable         []catalog.Model                               `json:"notable"`
}

// Evaluate derives the View of models under st. It never fails; an empty
// catalog yields an empty View with HasBaseline false.
func Evaluate(models []catalog.Model, st query.State) View {
	st = st.Normalize()
	visible := query.FilterAndSort(models, st)
	baseline, ok := compare.ResolveBaseline(models, st.BaselineID)

	v := View{
		State:         st,
		Visible:       visible,
		Baseline:      baseline,
		HasBaseline:   ok,
		ScenarioCosts: make(map[int]cost.Amount, len(visible)),
		Profiles:      cost.TaskProfiles(),
		Summary:       metrics.Summarize(visible, models, st.Scenario),
		Notable:       catalog.Disabled(models),
	}
	if ok {
		v.Comparisons = compare.CompareAll(visible, baseline, st.Scenario)
	} else {
		v.Comparisons = map[compare.Metric]map[int]compare.Comparison{}
	}
	for _, m := range visible {
		v.ScenarioCosts[m.ID] = cost.EstimateScenario(m, st.Scenario)
		if ok && m.ID == baseline.ID {
			v.BaselineVisible = true
		}
	}
	v.TaskCosts = cost.TaskTable(visible, v.Profiles)
	return v
}

// Comparison returns the comparison of model id on metric.
func (v View) Comparison(metric compare.Metric, id int) (compare.Comparison, bool) {
	c, ok := v.Comparisons[metric][id]
	return c, ok
}
