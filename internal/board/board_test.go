package board

import (
	"testing"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/query"
)

func TestEvaluateDefaultState(t *testing.T) {
	all := catalog.Builtin()
	v := Evaluate(all, query.DefaultState())

	if len(v.Visible) != len(catalog.Enabled(all)) {
		t.Fatalf("expected %d visible, got %d", len(catalog.Enabled(all)), len(v.Visible))
	}
	if !v.HasBaseline || v.Baseline.ID != catalog.Enabled(all)[0].ID || !v.BaselineVisible {
		t.Fatalf("unexpected baseline %+v", v.Baseline)
	}
	for _, metric := range compare.Metrics() {
		if len(v.Comparisons[metric]) != len(v.Visible) {
			t.Fatalf("metric %s has %d comparisons", metric, len(v.Comparisons[metric]))
		}
	}
	if len(v.ScenarioCosts) != len(v.Visible) || len(v.TaskCosts) != len(v.Visible) {
		t.Fatal("cost tables should cover every visible model")
	}
	if len(v.Notable) != len(catalog.Disabled(all)) {
		t.Fatal("notable mentions should list every disabled model")
	}
	if v.Summary.Visible != len(v.Visible) || v.Summary.Total != len(all) {
		t.Fatalf("unexpected summary %+v", v.Summary)
	}
}

func TestEvaluateHiddenBaseline(t *testing.T) {
	all := catalog.Builtin()
	st := query.DefaultState()
	st.BaselineID = catalog.Enabled(all)[0].ID
	st.Search = "no such model"
	v := Evaluate(all, st)
	if len(v.Visible) != 0 || v.BaselineVisible || !v.HasBaseline {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.Summary.AverageMMLU() != "N/A" {
		t.Fatalf("expected N/A average, got %s", v.Summary.AverageMMLU())
	}
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	v := Evaluate(nil, query.DefaultState())
	if v.HasBaseline || len(v.Visible) != 0 {
		t.Fatalf("unexpected view %+v", v)
	}
	if _, ok := v.Comparison(compare.MetricMMLU, 1); ok {
		t.Fatal("no comparisons expected")
	}
}
