package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/query"
)

var plain = NewPalette(false)

func TestModelsTable(t *testing.T) {
	v := board.Evaluate(catalog.Builtin(), query.DefaultState())
	var buf bytes.Buffer
	if err := Models(&buf, v, plain); err != nil {
		t.Fatalf("Models: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("disabled palette emitted escape codes:\n%s", out)
	}
	for _, m := range v.Visible {
		if !strings.Contains(out, m.Name) {
			t.Fatalf("expected %q in output", m.Name)
		}
	}
	if !strings.Contains(out, "MMLU v") {
		t.Fatalf("expected sort marker on MMLU header:\n%s", out)
	}
}

func TestCompareTableBadges(t *testing.T) {
	models := []catalog.Model{
		{ID: 1, Name: "Base", Enabled: true, Category: catalog.CategoryFlagship, Scores: catalog.Scores{MMLU: 86.8}, InputPricePerMillion: 1, OutputPricePerMillion: 1},
		{ID: 2, Name: "Other", Enabled: true, Category: catalog.CategoryFlagship, Scores: catalog.Scores{MMLU: 82.4}, Free: true},
	}
	st := query.DefaultState()
	st.BaselineID = 1
	v := board.Evaluate(models, st)

	var buf bytes.Buffer
	if err := Compare(&buf, v, []compare.Metric{compare.MetricMMLU, compare.MetricCost}, plain); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Baseline: Base", "Base *", "86.8 (100%)", "82.4 (95%)", "FREE"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCellNotApplicable(t *testing.T) {
	models := []catalog.Model{
		{ID: 1, Name: "Free Base", Enabled: true, Free: true, Category: catalog.CategoryOpenSource},
		{ID: 2, Name: "Paid", Enabled: true, InputPricePerMillion: 1, OutputPricePerMillion: 2, Category: catalog.CategoryFlagship},
	}
	st := query.DefaultState()
	v := board.Evaluate(models, st)
	got := Cell(plain, v, compare.MetricCost, models[1])
	if !strings.Contains(got, "N/A") {
		t.Fatalf("expected N/A for a free baseline, got %q", got)
	}
}

func TestEmptyViewMessages(t *testing.T) {
	st := query.DefaultState()
	st.Search = "no such model"
	v := board.Evaluate(catalog.Builtin(), st)

	var buf bytes.Buffer
	if err := Models(&buf, v, plain); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No models match") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	buf.Reset()
	if err := Summary(&buf, v, plain); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Avg MMLU: N/A") {
		t.Fatalf("expected N/A average:\n%s", buf.String())
	}
}

func TestTasksAndNotable(t *testing.T) {
	v := board.Evaluate(catalog.Builtin(), query.DefaultState())
	var buf bytes.Buffer
	if err := Tasks(&buf, v, plain); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Quick Question") || !strings.Contains(buf.String(), "Complex Analysis") {
		t.Fatalf("expected task profile headers:\n%s", buf.String())
	}
	buf.Reset()
	if err := Notable(&buf, v, plain); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), v.Notable[0].Name) {
		t.Fatalf("expected notable names:\n%s", buf.String())
	}
}

func TestHexRGB(t *testing.T) {
	r, g, b, ok := hexRGB("#3B82F6")
	if !ok || r != 0x3b || g != 0x82 || b != 0xf6 {
		t.Fatalf("hexRGB = %d %d %d %v", r, g, b, ok)
	}
	if _, _, _, ok := hexRGB("blue"); ok {
		t.Fatal("expected invalid hex")
	}
}
