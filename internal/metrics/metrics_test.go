package metrics

import (
	"math"
	"testing"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
)

func TestRunningStat(t *testing.T) {
	var rs RunningStat
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		rs.Add(v)
	}
	if rs.Count != 8 || math.Abs(rs.Mean-5) > 1e-9 || rs.Min != 2 || rs.Max != 9 {
		t.Fatalf("unexpected stat %+v", rs)
	}
	if math.Abs(rs.StdDev()-2) > 1e-9 {
		t.Fatalf("stddev = %f", rs.StdDev())
	}
}

func TestSummarizeEmptyIsNotAvailable(t *testing.T) {
	s := Summarize(nil, catalog.Builtin(), cost.DefaultScenario())
	if s.Visible != 0 || s.Total == 0 {
		t.Fatalf("unexpected counts %+v", s)
	}
	mmlu := s.Benchmark(compare.MetricMMLU)
	if mmlu.Valid() || math.IsNaN(mmlu.Mean) || mmlu.Mean != 0 {
		t.Fatalf("expected empty stat, got %+v", mmlu)
	}
	if s.AverageMMLU() != NotAvailable || s.AverageCost() != NotAvailable {
		t.Fatalf("expected N/A, got %s and %s", s.AverageMMLU(), s.AverageCost())
	}
}

func TestSummarizeCounts(t *testing.T) {
	visible := []catalog.Model{
		{ID: 1, Free: true, OpenSource: true, Enabled: true, Scores: catalog.Scores{MMLU: 80, GPQA: 0}},
		{ID: 2, Enabled: true, InputPricePerMillion: 1, OutputPricePerMillion: 1, Scores: catalog.Scores{MMLU: 90, GPQA: 50}},
		{ID: 3, OpenSource: true, Free: true, Scores: catalog.Scores{MMLU: 70}},
	}
	s := Summarize(visible, visible, cost.Scenario{InputTokens: 1_000_000, OutputTokens: 1_000_000})
	if s.Visible != 3 || s.Free != 2 || s.OpenSource != 2 || s.Enabled != 2 || s.Total != 3 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if got := s.AverageMMLU(); got != "80.0%" {
		t.Fatalf("average mmlu = %s", got)
	}
	if gpqa := s.Benchmark(compare.MetricGPQA); gpqa.Count != 1 || gpqa.Mean != 50 {
		t.Fatalf("unreported scores should be skipped, got %+v", gpqa)
	}
	if s.Cost.Count != 3 || math.Abs(s.Cost.Mean-2.0/3.0) > 1e-9 {
		t.Fatalf("unexpected cost stat %+v", s.Cost)
	}
}
