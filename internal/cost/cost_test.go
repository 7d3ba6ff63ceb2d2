package cost

import (
	"testing"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/shopspring/decimal"
)

var (
	modelA = catalog.Model{ID: 1, Name: "A", InputPricePerMillion: 0.10, OutputPricePerMillion: 0.30}
	modelB = catalog.Model{ID: 2, Name: "B", Free: true}
)

func TestEstimateScenarioFromPricing(t *testing.T) {
	got := Estimate(modelA, 1_000_000, 5_000_000)
	if !got.Value.Equal(decimal.RequireFromString("1.6")) {
		t.Fatalf("expected 1.60, got %s", got.Value)
	}
	if got.Free {
		t.Fatal("paid model reported free")
	}
	if got.String() != "$1.6000" {
		t.Fatalf("unexpected label %s", got.String())
	}
}

func TestEstimateFreeModel(t *testing.T) {
	for _, tokens := range [][2]int{{0, 0}, {1, 1}, {1_000_000, 5_000_000}} {
		got := Estimate(modelB, tokens[0], tokens[1])
		if !got.Free || !got.IsZero() {
			t.Fatalf("free model with %v tokens estimated %+v", tokens, got)
		}
		if got.String() != FreeLabel {
			t.Fatalf("expected FREE label, got %s", got.String())
		}
	}

	stale := catalog.Model{Name: "stale", Free: true, InputPricePerMillion: 9, OutputPricePerMillion: 9}
	if got := Estimate(stale, 1000, 1000); !got.IsZero() {
		t.Fatalf("free flag must win over stale prices, got %s", got.Value)
	}
}

func TestEstimateZeroTokens(t *testing.T) {
	for _, m := range catalog.Builtin() {
		if got := Estimate(m, 0, 0); !got.IsZero() {
			t.Fatalf("%s: expected zero cost for zero tokens, got %s", m.Name, got.Value)
		}
	}
}

func TestEstimateClampsNegativeTokens(t *testing.T) {
	got := Estimate(modelA, -500, 1_000_000)
	if !got.Value.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected negative input to count as zero, got %s", got.Value)
	}
	sc := Scenario{InputTokens: -1, OutputTokens: -2}.Clamp()
	if sc.InputTokens != 0 || sc.OutputTokens != 0 {
		t.Fatalf("Clamp left negatives: %+v", sc)
	}
}

func TestProfiles(t *testing.T) {
	profiles := TaskProfiles()
	if len(profiles) != 5 || profiles[0].Name != "Quick Question" {
		t.Fatalf("unexpected profiles %+v", profiles)
	}
	p, ok := ProfileByName("  complex analysis ")
	if !ok || p.InputTokens != 20000 || p.OutputTokens != 30000 {
		t.Fatalf("ProfileByName = %+v, %v", p, ok)
	}
	if _, ok := ProfileByName("poetry"); ok {
		t.Fatal("unknown profile should not resolve")
	}
	if DefaultScenario() != (Scenario{InputTokens: 500, OutputTokens: 1000}) {
		t.Fatalf("unexpected default scenario %+v", DefaultScenario())
	}
}

func TestTaskTable(t *testing.T) {
	rows := TaskTable([]catalog.Model{modelA, modelB}, TaskProfiles())
	if len(rows) != 2 || len(rows[0].Costs) != 5 {
		t.Fatalf("unexpected table shape %+v", rows)
	}
	// Quick Question: 500*0.10 + 1000*0.30 = 350 / 1e6
	if !rows[0].Costs[0].Value.Equal(decimal.RequireFromString("0.00035")) {
		t.Fatalf("unexpected quick question cost %s", rows[0].Costs[0].Value)
	}
	for _, c := range rows[1].Costs {
		if !c.Free {
			t.Fatalf("free model row has paid cost %+v", c)
		}
	}
}

func TestPriceLabel(t *testing.T) {
	if got := PriceLabel(modelA); got != "$0.10/$0.30" {
		t.Fatalf("unexpected price label %s", got)
	}
	if got := PriceLabel(modelB); got != FreeLabel {
		t.Fatalf("unexpected free price label %s", got)
	}
}
