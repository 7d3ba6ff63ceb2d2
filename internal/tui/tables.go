// internal/tui/tables.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/mwiater/llmcompare/internal/util"
)

const nameWidth = 28

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			return tableCell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func sortHeader(st query.State, label string, key query.SortKey) string {
	if st.SortKey != key {
		return label
	}
	if st.Direction == query.Asc {
		return label + " ▲"
	}
	return label + " ▼"
}

func modelName(v board.View, m catalog.Model) string {
	name := util.TruncateRunes(m.Name, nameWidth)
	if v.HasBaseline && m.ID == v.Baseline.ID {
		return baselineStyle.Render(name + " ★")
	}
	if !m.Enabled {
		return name + " " + mutedStyle.Render("(notable)")
	}
	return name
}

func badge(v board.View, metric compare.Metric, m catalog.Model) string {
	c, ok := v.Comparison(metric, m.ID)
	if !ok {
		return ""
	}
	if c.Free {
		return freeStyle.Render(cost.FreeLabel)
	}
	label := c.Label(v.State.Mode)
	if c.IsBaseline {
		return baselineStyle.Render(label)
	}
	return tierStyle(c.Tier).Render(label)
}

func compareTable(v board.View) string {
	st := v.State
	headers := []string{sortHeader(st, "Model", query.SortName), "Category"}
	for _, metric := range compare.Metrics() {
		headers = append(headers, sortHeader(st, metric.Label(), query.SortKey(metric)))
	}
	rows := make([][]string, 0, len(v.Visible))
	for _, m := range v.Visible {
		row := []string{modelName(v, m), categoryChip(m.Category)}
		for _, metric := range compare.Metrics() {
			b := badge(v, metric, m)
			c, _ := v.Comparison(metric, m.ID)
			if c.Free {
				row = append(row, b)
				continue
			}
			row = append(row, render.MetricValue(v, metric, m)+" "+b)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No models match the current filters.")
	}
	return newTable(headers, rows)
}

func taskTable(v board.View) string {
	headers := []string{"Model"}
	for _, p := range v.Profiles {
		headers = append(headers, p.Name)
	}
	rows := make([][]string, 0, len(v.TaskCosts))
	for _, r := range v.TaskCosts {
		row := []string{modelName(v, r.Model)}
		for _, a := range r.Costs {
			if a.Free {
				row = append(row, freeStyle.Render(a.String()))
			} else {
				row = append(row, a.String())
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No models match the current filters.")
	}
	return newTable(headers, rows)
}

func notableTable(v board.View, width int) string {
	noteWidth := max((width-nameWidth-40)/3, 16)
	rows := make([][]string, 0, len(v.Notable))
	for _, m := range v.Notable {
		price := m.PriceNote
		if price == "" {
			price = cost.PriceLabel(m)
		}
		rows = append(rows, []string{
			m.Name,
			categoryChip(m.Category),
			price,
			util.WrapToWidth(m.BestFor, noteWidth),
			util.WrapToWidth(m.Pros, noteWidth),
			util.WrapToWidth(m.Cons, noteWidth),
		})
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No notable mentions in this catalog.")
	}
	return newTable([]string{"Model", "Category", "Price", "Best For", "Pros", "Cons"}, rows)
}

func summaryLine(v board.View) string {
	s := v.Summary
	cards := []string{
		fmt.Sprintf("Models %d/%d", s.Visible, s.Total),
		fmt.Sprintf("Free %d", s.Free),
		fmt.Sprintf("Open Source %d", s.OpenSource),
		fmt.Sprintf("Avg MMLU %s", s.AverageMMLU()),
		fmt.Sprintf("Avg Cost %s", s.AverageCost()),
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = badgeStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func helpText() string {
	lines := []string{
		"/        search by name (enter or esc to leave)",
		"f        toggle free / open source only",
		"d        toggle notable (disabled) models",
		"s        cycle sort column",
		"r        reverse sort direction",
		"b        choose baseline model",
		"m        toggle percent / delta labels",
		"+ / -    larger / smaller task profile for cost",
		"tab      next view",
		"?        this help",
		"q        quit",
		"",
		"Tiers: " + tierStyle(compare.TierAbove).Render(compare.TierAbove.Description()) + ", " +
			tierStyle(compare.TierNear).Render(compare.TierNear.Description()) + ", " +
			tierStyle(compare.TierBelow).Render(compare.TierBelow.Description()),
	}
	for _, metric := range compare.Metrics() {
		lines = append(lines, "", metric.Label()+": "+metric.Info().Description)
	}
	return strings.Join(lines, "\n")
}
