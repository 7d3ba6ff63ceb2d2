package llmcompare

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags returns every flag in the tree to its default so commands can
// be executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return b.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func TestListDefaultSortsByMMLUDescending(t *testing.T) {
	out := mustRun(t, "list")
	if !strings.Contains(out, "MMLU v") {
		t.Fatalf("expected MMLU sort marker:\n%s", out)
	}
	if strings.Contains(out, "GPT-4o") {
		t.Fatalf("disabled models should be hidden by default:\n%s", out)
	}
	if !strings.Contains(out, "Google Gemini 3 Pro") {
		t.Fatalf("expected enabled models:\n%s", out)
	}
}

func TestListSearchAndDisabled(t *testing.T) {
	out := mustRun(t, "list", "--search", "gemini")
	if !strings.Contains(out, "Google Gemini 3 Flash") || strings.Contains(out, "DeepSeek") {
		t.Fatalf("search should keep only gemini models:\n%s", out)
	}

	out = mustRun(t, "list", "--search", "gpt-4o", "--disabled")
	if !strings.Contains(out, "GPT-4o") {
		t.Fatalf("--disabled should show notable mentions:\n%s", out)
	}

	out = mustRun(t, "list", "--search", "no-such-model")
	if !strings.Contains(out, "No models match") {
		t.Fatalf("expected empty message:\n%s", out)
	}
}

func TestListRejectsBadSortFlags(t *testing.T) {
	if _, err := run(t, "list", "--sort", "vibes"); err == nil {
		t.Fatal("expected unknown sort key error")
	}
	if _, err := run(t, "list", "--dir", "sideways"); err == nil {
		t.Fatal("expected unknown direction error")
	}
	out := mustRun(t, "list", "--sort", "name", "--dir", "asc")
	if !strings.Contains(out, "Model ^") {
		t.Fatalf("expected ascending name marker:\n%s", out)
	}
}

func TestListSubcommands(t *testing.T) {
	out := mustRun(t, "list", "commands")
	for _, want := range []string{"Commands and Subcommands:", "catalog validate", "cost tasks", "show config"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	out = mustRun(t, "list", "categories")
	if !strings.Contains(out, "Flagship") || !strings.Contains(out, "Free Tier") {
		t.Fatalf("expected category legend:\n%s", out)
	}
}

func TestCompareBaseline(t *testing.T) {
	out := mustRun(t, "compare", "--baseline", "2", "--metric", "mmlu,gpqa")
	if !strings.Contains(out, "Baseline: Google Gemini 3 Pro (id 2, percent mode)") {
		t.Fatalf("expected baseline line:\n%s", out)
	}
	if !strings.Contains(out, "100%") {
		t.Fatalf("baseline should compare at 100%%:\n%s", out)
	}
	if strings.Contains(out, "HumanEval") {
		t.Fatalf("only the requested metrics should be shown:\n%s", out)
	}

	out = mustRun(t, "compare", "--baseline", "2", "--mode", "delta", "--metric", "mmlu")
	if !strings.Contains(out, "delta mode") {
		t.Fatalf("expected delta mode:\n%s", out)
	}

	if _, err := run(t, "compare", "--metric", "vibes"); err == nil {
		t.Fatal("expected unknown metric error")
	}
	if _, err := run(t, "compare", "--mode", "ratio"); err == nil {
		t.Fatal("expected unknown mode error")
	}
}

func TestParseMetrics(t *testing.T) {
	all, err := parseMetrics("all")
	if err != nil || len(all) != len(compare.Metrics()) {
		t.Fatalf("all: got %v, %v", all, err)
	}
	got, err := parseMetrics(" GPQA, mmlu ,gpqa")
	if err != nil {
		t.Fatalf("parseMetrics: %v", err)
	}
	if len(got) != 2 || got[0] != compare.MetricGPQA || got[1] != compare.MetricMMLU {
		t.Fatalf("unexpected metrics %v", got)
	}
}

func TestCostScenario(t *testing.T) {
	out := mustRun(t, "cost", "--task", "code generation")
	if !strings.Contains(out, "Scenario: 3000 in / 5000 out") {
		t.Fatalf("expected task scenario:\n%s", out)
	}
	if !strings.Contains(out, "FREE") {
		t.Fatalf("free models should estimate to FREE:\n%s", out)
	}

	out = mustRun(t, "cost", "--task", "Quick Question", "--out", "0")
	if !strings.Contains(out, "Scenario: 500 in / 0 out") {
		t.Fatalf("--out should override the task volume:\n%s", out)
	}

	if _, err := run(t, "cost", "--task", "Haiku"); err == nil {
		t.Fatal("expected unknown task error")
	}

	out = mustRun(t, "cost", "tasks")
	if !strings.Contains(out, "Complex Analysis") {
		t.Fatalf("expected task columns:\n%s", out)
	}
}

func TestSummaryAndNotable(t *testing.T) {
	out := mustRun(t, "summary")
	if !strings.Contains(out, "Avg MMLU:") || strings.Contains(out, "NaN") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	out = mustRun(t, "summary", "--search", "no-such-model")
	if !strings.Contains(out, "Avg MMLU: N/A") {
		t.Fatalf("empty visible set should average N/A:\n%s", out)
	}

	out = mustRun(t, "notable")
	if !strings.Contains(out, "Claude 3.7 Sonnet") {
		t.Fatalf("expected notable mentions:\n%s", out)
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "compare.csv")
	out := mustRun(t, "export", "--output", path, "--free")
	if !strings.Contains(out, "Report written to") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "id,name,category") {
		t.Fatalf("expected csv header, got:\n%s", data)
	}

	out = mustRun(t, "export", "--format", "markdown")
	if !strings.Contains(out, "|") {
		t.Fatalf("expected a markdown table on stdout:\n%s", out)
	}

	if _, err := run(t, "export"); err == nil {
		t.Fatal("expected an error without --format or --output")
	}
	if _, err := run(t, "export", "--format", "pdf"); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestExportFormat(t *testing.T) {
	f, err := exportFormat("", "out/report.htm")
	if err != nil || f != "html" {
		t.Fatalf("expected html from extension, got %q, %v", f, err)
	}
	f, err = exportFormat("json", "report.csv")
	if err != nil || f != "json" {
		t.Fatalf("--format should win over the extension, got %q, %v", f, err)
	}
}

func TestCatalogCommands(t *testing.T) {
	out := mustRun(t, "catalog", "validate")
	if !strings.Contains(out, "built-in catalog: OK") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `models:
  - id: 7
    name: Local Llama
    scores: {mmlu: 70}
    inputPrice: 0
    outputPrice: 0
    free: true
    openSource: true
    enabled: true
    category: Free Tier
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	out = mustRun(t, "catalog", "validate", path)
	if !strings.Contains(out, "OK, 1 models (1 enabled, 0 notable mentions)") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}
	out = mustRun(t, "--catalog", path, "catalog", "show", "7")
	if !strings.Contains(out, "Local Llama") {
		t.Fatalf("expected record dump:\n%s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"models": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "catalog", "validate", bad); err == nil {
		t.Fatal("expected invalid catalog error")
	}
	if _, err := run(t, "catalog", "show", "999"); err == nil {
		t.Fatal("expected unknown id error")
	}
	if _, err := run(t, "catalog", "show", "one"); err == nil {
		t.Fatal("expected non-integer id error")
	}
}

func TestShowConfig(t *testing.T) {
	out := mustRun(t, "show", "config")
	for _, want := range []string{"No config file loaded", "Catalog:         built-in", "mmlu desc"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"defaults": {"sortKey": "name", "direction": "asc", "search": "mistral"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { cfgFile = "" })

	out := mustRun(t, "--config", path, "list")
	if !strings.Contains(out, "Model ^") || !strings.Contains(out, "Mistral Codestral") || strings.Contains(out, "Gemini") {
		t.Fatalf("config defaults not applied:\n%s", out)
	}

	out = mustRun(t, "--config", path, "list", "--search", "gemini")
	if !strings.Contains(out, "Gemini") {
		t.Fatalf("flags should override config defaults:\n%s", out)
	}

	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "list"); err == nil {
		t.Fatal("an explicit missing config should fail")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("LLMCOMPARE_NO_COLOR", "false")
	t.Setenv("LLMCOMPARE_SERVER_ADDR", "0.0.0.0:9999")
	t.Setenv("LLMCOMPARE_CATALOG", filepath.Join(t.TempDir(), "missing.yaml"))

	out := mustRun(t, "--catalog", "", "show", "config")
	if !getConfig().NoColor {
		t.Fatal("--no-color should win over LLMCOMPARE_NO_COLOR")
	}
	if getConfig().CatalogPath != "" {
		t.Fatalf("--catalog should win over LLMCOMPARE_CATALOG, got %q", getConfig().CatalogPath)
	}
	if !strings.Contains(out, "0.0.0.0:9999") {
		t.Fatalf("environment should apply when no flag is set:\n%s", out)
	}
}
