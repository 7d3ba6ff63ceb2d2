// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/query"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"debug": false,
		"logFile": "logs/app.log",
		"serverAddr": "0.0.0.0:9000",
		"defaults": {
			"search": "gpt",
			"showDisabled": true,
			"sortKey": "cost",
			"direction": "asc",
			"baselineId": 3,
			"scenario": {"inputTokens": 1000, "outputTokens": 2000},
			"mode": "delta"
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.LogFilePath() != "logs/app.log" || cfg.ServerAddress() != "0.0.0.0:9000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.ConfigPath)
	}
	st := cfg.DefaultState()
	if st.Search != "gpt" || !st.ShowDisabled || st.SortKey != query.SortCost || st.Direction != query.Asc {
		t.Fatalf("unexpected defaults %+v", st)
	}
	if st.BaselineID != 3 || st.Scenario.InputTokens != 1000 || st.Scenario.OutputTokens != 2000 || st.Mode != compare.ModeDelta {
		t.Fatalf("unexpected defaults %+v", st)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ "debug": `)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load() with a missing explicit file should have failed")
	}
}

func TestAccessorDefaults(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "llmcompare.log" {
		t.Fatalf("unexpected log file default %q", cfg.LogFilePath())
	}
	if cfg.ServerAddress() != "127.0.0.1:8080" {
		t.Fatalf("unexpected server default %q", cfg.ServerAddress())
	}
	if cfg.Level() != "info" {
		t.Fatalf("unexpected level default %q", cfg.Level())
	}
	cfg.Debug = true
	if cfg.Level() != "debug" {
		t.Fatalf("debug should force the debug level, got %q", cfg.Level())
	}
	if st := cfg.DefaultState(); st != query.DefaultState() {
		t.Fatalf("expected built-in default state, got %+v", st)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLMCOMPARE_SERVER_ADDR", "localhost:1234")
	t.Setenv("LLMCOMPARE_NO_COLOR", "true")

	cfg := Config{ServerAddr: "from-file:1", LogFile: "kept.log"}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.ServerAddr != "localhost:1234" || !cfg.NoColor {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.LogFile != "kept.log" {
		t.Fatalf("unset env should keep file value, got %q", cfg.LogFile)
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	t.Setenv("LLMCOMPARE_DEBUG", "sometimes")
	var cfg Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, Config{CatalogPath: "models.yaml"})
	out := buf.String()
	for _, want := range []string{"No config file loaded", "models.yaml", "mmlu desc", "500 in / 1000 out", "Free/OSS Only: no"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
