// internal/tui/tui_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/query"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := initialModel(catalog.Builtin(), query.DefaultState())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 220, Height: 200})
	return m
}

func press(m *model, keys ...string) *model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(*model)
	}
	return m
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := initialModel(catalog.Builtin(), query.DefaultState())
	if got := m.View(); got != "Initializing..." {
		t.Fatalf("expected initializing view, got %q", got)
	}
}

func TestCompareViewListsEnabledModels(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, model := range catalog.Enabled(catalog.Builtin()) {
		if !strings.Contains(out, model.Name) {
			t.Fatalf("expected %q in view", model.Name)
		}
	}
	if !strings.Contains(out, "Baseline: "+m.board.Baseline.Name) {
		t.Fatalf("expected baseline badge in view")
	}
}

func TestFilterToggles(t *testing.T) {
	m := newTestModel(t)
	all := len(m.board.Visible)

	m = press(m, "f")
	if !m.st.FreeOrOpenSourceOnly || len(m.board.Visible) >= all {
		t.Fatalf("free filter not applied: %d of %d", len(m.board.Visible), all)
	}
	m = press(m, "f", "d")
	if !m.st.ShowDisabled || len(m.board.Visible) != len(catalog.Builtin()) {
		t.Fatalf("expected every model with notable shown, got %d", len(m.board.Visible))
	}
}

func TestSearchMode(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "/")
	if !m.searching {
		t.Fatal("expected search mode")
	}
	m = press(m, "g", "e", "m", "i", "n", "i")
	if m.st.Search != "gemini" {
		t.Fatalf("expected search text, got %q", m.st.Search)
	}
	for _, v := range m.board.Visible {
		if !strings.Contains(strings.ToLower(v.Name), "gemini") {
			t.Fatalf("unexpected visible model %q", v.Name)
		}
	}
	m = press(m, "q")
	if m.st.Search != "geminiq" {
		t.Fatalf("q should be typed while searching, got %q", m.st.Search)
	}
	m = press(m, "enter")
	if m.searching {
		t.Fatal("enter should leave search mode")
	}
}

func TestSortKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "s")
	if m.st.SortKey != query.SortHellaSwag || m.st.Direction != query.Desc {
		t.Fatalf("unexpected sort after s: %s %s", m.st.SortKey, m.st.Direction)
	}
	m = press(m, "r")
	if m.st.Direction != query.Asc {
		t.Fatalf("r should reverse, got %s", m.st.Direction)
	}
}

func TestModeAndScenario(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "m")
	if m.st.Mode != compare.ModeDelta {
		t.Fatalf("expected delta mode, got %s", m.st.Mode)
	}
	m = press(m, "+", "+")
	if m.st.Scenario != m.profiles[2].Scenario() {
		t.Fatalf("expected third profile scenario, got %+v", m.st.Scenario)
	}
	m = press(m, "-", "-", "-")
	if m.st.Scenario != m.profiles[0].Scenario() {
		t.Fatalf("scenario should clamp at the first profile, got %+v", m.st.Scenario)
	}
}

func TestBaselinePicker(t *testing.T) {
	m := newTestModel(t)
	before := m.board.Baseline.ID
	m = press(m, "b")
	if m.state != viewBaseline {
		t.Fatalf("expected baseline picker, got %v", m.state)
	}
	m = press(m, "down", "enter")
	if m.state != viewCompare {
		t.Fatalf("expected to return to compare view, got %v", m.state)
	}
	if m.board.Baseline.ID == before {
		t.Fatal("expected a different baseline")
	}
	c, ok := m.board.Comparison(compare.MetricMMLU, m.board.Baseline.ID)
	if m.board.BaselineVisible && (!ok || c.Percent != 100) {
		t.Fatalf("new baseline should be 100%%, got %+v", c)
	}
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "tab")
	if m.state != viewTasks || !strings.Contains(m.View(), "Quick Question") {
		t.Fatalf("expected task view")
	}
	m = press(m, "tab")
	if m.state != viewNotable || !strings.Contains(m.View(), m.board.Notable[0].Name) {
		t.Fatalf("expected notable view")
	}
	m = press(m, "tab")
	if m.state != viewHelp || !strings.Contains(m.View(), "toggle percent / delta") {
		t.Fatalf("expected help view")
	}
	m = press(m, "tab")
	if m.state != viewCompare {
		t.Fatalf("expected to wrap to compare view, got %v", m.state)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestEmptyCatalog(t *testing.T) {
	m := initialModel(nil, query.DefaultState())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "catalog is empty") {
		t.Fatalf("unexpected view %q", m.View())
	}
}
