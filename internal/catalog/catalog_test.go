package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinIsValid(t *testing.T) {
	models := Builtin()
	if err := Validate(models); err != nil {
		t.Fatalf("builtin catalog failed validation: %v", err)
	}
	if len(Enabled(models)) != 15 {
		t.Fatalf("expected 15 enabled models, got %d", len(Enabled(models)))
	}
	for _, m := range Disabled(models) {
		if m.HasScores() {
			t.Fatalf("notable mention %q should not carry benchmark scores", m.Name)
		}
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Name = "mutated"
	if Builtin()[0].Name == "mutated" {
		t.Fatal("Builtin must not expose the shared backing array")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	models := []Model{
		{ID: 1, Name: "free but priced", Free: true, InputPricePerMillion: 1, Category: CategoryBudget},
		{ID: 1, Name: "", Category: "Nope"},
		{ID: 2, Name: "negative", InputPricePerMillion: -1, OutputPricePerMillion: 1, Category: CategoryBudget, Scores: Scores{MMLU: -3}},
	}
	err := Validate(models)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
	for _, want := range []string{
		"marked free but has a non-zero price",
		"duplicate id",
		"name is empty",
		`unknown category "Nope"`,
		"zero price but not marked free",
		"negative price",
		"negative benchmark score",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog for empty catalog, got %v", err)
	}
}

func TestCategoryColors(t *testing.T) {
	if got := CategoryBudget.Color(); got != "#27ae60" {
		t.Fatalf("unexpected budget color %s", got)
	}
	if got := Category("Unheard Of").Color(); got != FallbackColor {
		t.Fatalf("expected fallback color, got %s", got)
	}
	if Category("Unheard Of").Valid() {
		t.Fatal("unknown category reported valid")
	}
	if len(Categories()) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(Categories()))
	}
}

func TestFind(t *testing.T) {
	m, ok := Find(Builtin(), 2)
	if !ok || m.Name != "Google Gemini 3 Pro" {
		t.Fatalf("Find(2) = %+v, %v", m, ok)
	}
	if _, ok := Find(Builtin(), 9999); ok {
		t.Fatal("Find should miss unknown ids")
	}
}

const validJSON = `{
  "models": [
    {"id": 1, "name": "Alpha", "scores": {"mmlu": 80}, "inputPrice": 0.1, "outputPrice": 0.3,
     "free": false, "openSource": false, "enabled": true, "category": "Budget"},
    {"id": 2, "name": "Beta", "inputPrice": 0, "outputPrice": 0,
     "free": true, "openSource": true, "enabled": false, "category": "Free Tier"}
  ]
}`

const validYAML = `
models:
  - id: 1
    name: Alpha
    scores: {mmlu: 80, gpqa: 40}
    inputPrice: 0.1
    outputPrice: 0.3
    free: false
    openSource: false
    enabled: true
    category: Budget
    contextWindow: 32K
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadJSONAndYAML(t *testing.T) {
	models, err := Load(writeCatalog(t, "catalog.json", validJSON))
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if len(models) != 2 || models[1].Category != CategoryFreeTier || !models[1].Free {
		t.Fatalf("unexpected json models: %+v", models)
	}

	models, err = Load(writeCatalog(t, "catalog.yaml", validYAML))
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if len(models) != 1 || models[0].Scores.GPQA != 40 || models[0].ContextWindow != "32K" {
		t.Fatalf("unexpected yaml models: %+v", models)
	}
}

func TestLoadEmptyPathUsesBuiltin(t *testing.T) {
	models, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(models) != len(Builtin()) {
		t.Fatalf("expected builtin catalog, got %d records", len(models))
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"schema.json":    `{"models": [{"id": 1, "name": "x"}]}`,
		"category.json":  `{"models": [{"id": 1, "name": "x", "inputPrice": 1, "outputPrice": 1, "free": false, "openSource": false, "enabled": true, "category": "Mystery"}]}`,
		"invariant.json": `{"models": [{"id": 1, "name": "x", "inputPrice": 0, "outputPrice": 0, "free": false, "openSource": false, "enabled": true, "category": "Budget"}]}`,
		"extra.json":     `{"models": [{"id": 1, "name": "x", "inputPrice": 1, "outputPrice": 1, "free": false, "openSource": false, "enabled": true, "category": "Budget", "rank": 3}]}`,
		"empty.json":     `{"models": []}`,
	}
	for name, content := range cases {
		if _, err := Load(writeCatalog(t, name, content)); !errors.Is(err, ErrInvalidCatalog) {
			t.Errorf("%s: expected ErrInvalidCatalog, got %v", name, err)
		}
	}

	if _, err := Load(writeCatalog(t, "broken.json", `{"models": [`)); err == nil {
		t.Error("expected parse error for truncated json")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
