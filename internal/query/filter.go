// internal/query/filter.go
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAndSort returns the records of models visible under st, ordered by
// st.SortKey and st.Direction. The input slice is never modified.
func FilterAndSort(models []catalog.Model, st State) []catalog.Model {
	st = st.Normalize()
	visible := lo.Filter(models, func(m catalog.Model, _ int) bool {
		return Matches(m, st)
	})

	compareFn := comparator(st)
	if st.Direction == Desc {
		asc := compareFn
		compareFn = func(a, b catalog.Model) int { return asc(b, a) }
	}
	slices.SortStableFunc(visible, compareFn)
	return visible
}

// Matches reports whether m passes every active filter of st.
func Matches(m catalog.Model, st State) bool {
	if !st.ShowDisabled && !m.Enabled {
		return false
	}
	if st.FreeOrOpenSourceOnly && !m.Free && !m.OpenSource {
		return false
	}
	if st.Search != "" {
		if !strings.Contains(strings.ToLower(m.Name), strings.ToLower(st.Search)) {
			return false
		}
	}
	return true
}

func comparator(st State) func(a, b catalog.Model) int {
	switch st.SortKey {
	case SortName:
		// A Collator keeps internal buffers, so one is built per sort.
		c := collate.New(language.English, collate.IgnoreCase)
		return func(a, b catalog.Model) int { return c.CompareString(a.Name, b.Name) }
	case SortCost:
		sc := st.Scenario
		return func(a, b catalog.Model) int {
			return cost.EstimateScenario(a, sc).Value.Cmp(cost.EstimateScenario(b, sc).Value)
		}
	}
	value := numericKey(st.SortKey)
	return func(a, b catalog.Model) int { return cmp.Compare(value(a), value(b)) }
}

func numericKey(k SortKey) func(catalog.Model) float64 {
	switch k {
	case SortHellaSwag:
		return func(m catalog.Model) float64 { return m.Scores.HellaSwag }
	case SortHumanEval:
		return func(m catalog.Model) float64 { return m.Scores.HumanEval }
	case SortGPQA:
		return func(m catalog.Model) float64 { return m.Scores.GPQA }
	case SortInputPrice:
		return func(m catalog.Model) float64 { return m.InputPricePerMillion }
	case SortOutputPrice:
		return func(m catalog.Model) float64 { return m.OutputPricePerMillion }
	default:
		return func(m catalog.Model) float64 { return m.Scores.MMLU }
	}
}
