// internal/tui/tui.go
// Package tui provides the interactive terminal comparison board.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/logging"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/mwiater/llmcompare/internal/util"
)

// viewState represents the current screen of the board.
type viewState int

const (
	// viewCompare shows every metric relative to the baseline.
	viewCompare viewState = iota
	// viewTasks shows estimated cost per task profile.
	viewTasks
	// viewNotable lists the notable-mention models.
	viewNotable
	// viewHelp lists key bindings and metric descriptions.
	viewHelp
	// viewBaseline is the baseline picker.
	viewBaseline
)

// cycled by tab
var tabViews = []viewState{viewCompare, viewTasks, viewNotable, viewHelp}

func (v viewState) title() string {
	switch v {
	case viewTasks:
		return "Cost by Task Type"
	case viewNotable:
		return "Notable Mentions"
	case viewHelp:
		return "Help"
	case viewBaseline:
		return "Select a Baseline"
	default:
		return "Comparison"
	}
}

const (
	headerHeight = 4
	footerHeight = 2
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	models       []catalog.Model
	st           query.State
	board        board.View
	state        viewState
	previous     viewState
	searching    bool
	search       textinput.Model
	baselineList list.Model
	viewport     viewport.Model
	profiles     []cost.TaskProfile
	profileIdx   int
	width        int
	height       int
}

// item represents a selectable model in the baseline picker.
type item struct {
	id    int
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

// initialModel creates a board model for models starting at st.
func initialModel(models []catalog.Model, st query.State) *model {
	ti := textinput.New()
	ti.Placeholder = "model name"
	ti.Prompt = "Search: "
	ti.CharLimit = 64
	ti.SetValue(st.Search)

	items := make([]list.Item, len(models))
	for i, m := range models {
		desc := fmt.Sprintf("%s · %s", m.Category, cost.PriceLabel(m))
		if !m.Enabled {
			desc += " · notable"
		}
		items[i] = item{id: m.ID, title: m.Name, desc: desc}
	}
	baselineList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	baselineList.Title = viewBaseline.title()

	m := &model{
		models:       models,
		st:           st.Normalize(),
		search:       ti,
		baselineList: baselineList,
		viewport:     viewport.New(100, 20),
		profiles:     cost.TaskProfiles(),
	}
	m.profileIdx = m.matchingProfile()
	m.recompute()
	return m
}

// matchingProfile returns the index of the profile equal to the current scenario, or -1.
func (m *model) matchingProfile() int {
	for i, p := range m.profiles {
		if p.Scenario() == m.st.Scenario {
			return i
		}
	}
	return -1
}

// recompute re-runs the pipeline for the current state and refreshes the viewport.
func (m *model) recompute() {
	m.board = board.Evaluate(m.models, m.st)
	m.viewport.SetContent(m.body())
	logging.Debugf("[TUI] state=%+v visible=%d", m.st, len(m.board.Visible))
}

// body renders the scrollable content of the current view.
func (m *model) body() string {
	switch m.state {
	case viewTasks:
		return taskTable(m.board)
	case viewNotable:
		return notableTable(m.board, m.width)
	case viewHelp:
		return util.WrapToWidth(helpText(), max(m.width-2, 40))
	default:
		return compareTable(m.board)
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.baselineList.SetSize(msg.Width-2, msg.Height-4)
		m.search.Width = max(msg.Width-len(m.search.Prompt)-4, 10)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
		m.viewport.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.state == viewBaseline {
			return m.updateBaseline(msg)
		}
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.state == viewBaseline {
		m.baselineList, cmd = m.baselineList.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey applies board shortcuts. It reports false for keys it does not own.
func (m *model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "/":
		m.searching = true
		return true, m.search.Focus()
	case "f":
		m.st.FreeOrOpenSourceOnly = !m.st.FreeOrOpenSourceOnly
	case "d":
		m.st.ShowDisabled = !m.st.ShowDisabled
	case "s":
		m.st = m.st.ToggleSort(m.st.SortKey.Next())
	case "r":
		m.st.Direction = m.st.Direction.Reverse()
	case "m":
		if m.st.Mode == compare.ModeDelta {
			m.st.Mode = compare.ModePercent
		} else {
			m.st.Mode = compare.ModeDelta
		}
	case "+", "=":
		m.stepProfile(1)
	case "-", "_":
		m.stepProfile(-1)
	case "b":
		m.openBaselinePicker()
		return true, nil
	case "tab":
		m.state = nextTab(m.state)
		m.viewport.GotoTop()
	case "?":
		m.state = viewHelp
	default:
		return false, nil
	}
	m.recompute()
	return true, nil
}

func nextTab(current viewState) viewState {
	for i, v := range tabViews {
		if v == current {
			return tabViews[(i+1)%len(tabViews)]
		}
	}
	return viewCompare
}

// stepProfile moves the cost scenario to the next or previous task profile.
func (m *model) stepProfile(delta int) {
	n := len(m.profiles)
	if n == 0 {
		return
	}
	switch {
	case m.profileIdx < 0 && delta > 0:
		m.profileIdx = 0
	case m.profileIdx < 0:
		m.profileIdx = n - 1
	default:
		m.profileIdx = min(max(m.profileIdx+delta, 0), n-1)
	}
	m.st.Scenario = m.profiles[m.profileIdx].Scenario()
}

func (m *model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.st.Search {
		m.st.Search = m.search.Value()
		m.recompute()
	}
	return m, cmd
}

func (m *model) openBaselinePicker() {
	m.previous = m.state
	m.state = viewBaseline
	for i, it := range m.baselineList.Items() {
		if it.(item).id == m.board.Baseline.ID {
			m.baselineList.Select(i)
			break
		}
	}
}

func (m *model) updateBaseline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.baselineList.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc", "q":
			m.state = m.previous
			return m, nil
		case "enter":
			if selected, ok := m.baselineList.SelectedItem().(item); ok {
				m.st.BaselineID = selected.id
				logging.LogEvent("[TUI] baseline set to %s", selected.title)
			}
			m.state = m.previous
			m.recompute()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.baselineList, cmd = m.baselineList.Update(msg)
	return m, cmd
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if !m.board.HasBaseline {
		return errorStyle.Render("Error: the catalog is empty")
	}
	if m.state == viewBaseline {
		return lipgloss.NewStyle().Margin(1, 2).Render(m.baselineList.View())
	}

	var b strings.Builder
	b.WriteString(m.header() + "\n")
	b.WriteString(summaryLine(m.board) + "\n")
	if m.searching || m.st.Search != "" {
		b.WriteString(m.search.View())
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(helpStyle.Render(util.TruncateToWidth(m.footer(), max(m.width-1, 10))))
	return b.String()
}

func (m *model) header() string {
	baseline := m.board.Baseline.Name
	if !m.board.BaselineVisible {
		baseline += " (hidden)"
	}
	filters := []string{}
	if m.st.FreeOrOpenSourceOnly {
		filters = append(filters, "free/oss")
	}
	if m.st.ShowDisabled {
		filters = append(filters, "+notable")
	}
	if len(filters) == 0 {
		filters = append(filters, "none")
	}
	scenario := m.st.Scenario.String()
	if m.profileIdx >= 0 && m.profileIdx < len(m.profiles) {
		scenario = m.profiles[m.profileIdx].Name + ": " + scenario
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("llmcompare"),
		headerStyle.MarginLeft(1).Render(m.state.title()),
		headerStyle.MarginLeft(1).Render("Baseline: "+baseline),
		badgeStyle.Render("Mode: "+string(m.st.Mode)),
		badgeStyle.Render("Filters: "+strings.Join(filters, ", ")),
		badgeStyle.Render("Scenario: "+scenario),
	)
}

func (m *model) footer() string {
	if m.searching {
		return " enter/esc: done searching"
	}
	return fmt.Sprintf(" sort %s %s · / search · f free · d notable · s sort · r reverse · b baseline · m mode · +/- task · tab views · ? help · q quit",
		m.st.SortKey, m.st.Direction)
}

// StartTUI runs the interactive board until the user quits or ctx is cancelled.
func StartTUI(ctx context.Context, models []catalog.Model, st query.State) error {
	m := initialModel(models, st)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
