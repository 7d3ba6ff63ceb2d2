// internal/render/tables.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/mwiater/llmcompare/internal/util"
)

const noteWidth = 40

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders headers and rows with a rounded border. Cells may contain ANSI color.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func headers(p Palette, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = p.Header(n)
	}
	return out
}

func sortMarker(v board.View, label string, key query.SortKey) string {
	if v.State.SortKey != key {
		return label
	}
	if v.State.Direction == query.Asc {
		return label + " ^"
	}
	return label + " v"
}

// Models writes the visible records with absolute values only.
func Models(w io.Writer, v board.View, p Palette) error {
	hs := headers(p,
		sortMarker(v, "Model", query.SortName),
		"Category",
		sortMarker(v, "MMLU", query.SortMMLU),
		sortMarker(v, "HellaSwag", query.SortHellaSwag),
		sortMarker(v, "HumanEval", query.SortHumanEval),
		sortMarker(v, "GPQA", query.SortGPQA),
		"Price (in/out per 1M)",
		"Context",
		"Access",
	)
	rows := make([][]string, 0, len(v.Visible))
	for _, m := range v.Visible {
		rows = append(rows, []string{
			ModelName(p, v, m),
			p.Category(m.Category, string(m.Category)),
			Score(m.Scores.MMLU),
			Score(m.Scores.HellaSwag),
			Score(m.Scores.HumanEval),
			Score(m.Scores.GPQA),
			cost.PriceLabel(m),
			m.ContextWindow,
			Flags(p, m),
		})
	}
	return write(w, Table(hs, rows), len(rows), noMatches)
}

// Compare writes value and baseline badge for each metric.
func Compare(w io.Writer, v board.View, metrics []compare.Metric, p Palette) error {
	names := []string{sortMarker(v, "Model", query.SortName)}
	for _, metric := range metrics {
		names = append(names, sortMarker(v, metric.Label(), query.SortKey(metric)))
	}
	hs := headers(p, names...)
	rows := make([][]string, 0, len(v.Visible))
	for _, m := range v.Visible {
		row := []string{ModelName(p, v, m)}
		for _, metric := range metrics {
			row = append(row, Cell(p, v, metric, m))
		}
		rows = append(rows, row)
	}
	if err := baselineLine(w, v, p); err != nil {
		return err
	}
	return write(w, Table(hs, rows), len(rows), noMatches)
}

func baselineLine(w io.Writer, v board.View, p Palette) error {
	if !v.HasBaseline {
		_, err := fmt.Fprintln(w, p.Muted("No baseline: the catalog is empty."))
		return err
	}
	line := fmt.Sprintf("Baseline: %s (id %d, %s mode)", v.Baseline.Name, v.Baseline.ID, v.State.Mode)
	if !v.BaselineVisible {
		line += " " + p.Muted("[hidden by filters]")
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// Cost writes the estimated cost of every visible record at the view's scenario.
func Cost(w io.Writer, v board.View, p Palette) error {
	if _, err := fmt.Fprintf(w, "Scenario: %s\n", v.State.Scenario); err != nil {
		return err
	}
	if err := baselineLine(w, v, p); err != nil {
		return err
	}
	hs := headers(p, sortMarker(v, "Model", query.SortName), "Price (in/out per 1M)", sortMarker(v, "Estimated Cost", query.SortCost))
	rows := make([][]string, 0, len(v.Visible))
	for _, m := range v.Visible {
		rows = append(rows, []string{ModelName(p, v, m), cost.PriceLabel(m), Cell(p, v, compare.MetricCost, m)})
	}
	return write(w, Table(hs, rows), len(rows), noMatches)
}

// Tasks writes the cost-by-task table.
func Tasks(w io.Writer, v board.View, p Palette) error {
	names := []string{"Model"}
	for _, prof := range v.Profiles {
		names = append(names, fmt.Sprintf("%s\n%d/%d", prof.Name, prof.InputTokens, prof.OutputTokens))
	}
	hs := headers(p, names...)
	rows := make([][]string, 0, len(v.TaskCosts))
	for _, r := range v.TaskCosts {
		row := []string{ModelName(p, v, r.Model)}
		for _, a := range r.Costs {
			if a.Free {
				row = append(row, p.Free(a.String()))
			} else {
				row = append(row, a.String())
			}
		}
		rows = append(rows, row)
	}
	return write(w, Table(hs, rows), len(rows), noMatches)
}

// Summary writes the stat cards.
func Summary(w io.Writer, v board.View, p Palette) error {
	s := v.Summary
	lines := []string{
		fmt.Sprintf("%s %d of %d (%d enabled)", p.Header("Models:"), s.Visible, s.Total, s.Enabled),
		fmt.Sprintf("%s %d", p.Header("Free:"), s.Free),
		fmt.Sprintf("%s %d", p.Header("Open Source:"), s.OpenSource),
		fmt.Sprintf("%s %s", p.Header("Avg MMLU:"), s.AverageMMLU()),
		fmt.Sprintf("%s %s at %s", p.Header("Avg Cost:"), s.AverageCost(), s.Scenario),
	}
	rows := make([][]string, 0, 4)
	for _, metric := range compare.BenchmarkMetrics() {
		st := s.Benchmark(metric)
		if !st.Valid() {
			rows = append(rows, []string{metric.Label(), "0", "N/A", "N/A", "N/A"})
			continue
		}
		rows = append(rows, []string{
			metric.Label(),
			fmt.Sprintf("%d", st.Count),
			fmt.Sprintf("%.1f", st.Mean),
			fmt.Sprintf("%.1f", st.Min),
			fmt.Sprintf("%.1f", st.Max),
		})
	}
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Table(headers(p, "Benchmark", "Reported", "Mean", "Min", "Max"), rows))
	return err
}

// Notable writes the notable-mentions table with wrapped notes.
func Notable(w io.Writer, v board.View, p Palette) error {
	hs := headers(p, "Model", "Category", "Price", "Best For", "Pros", "Cons")
	rows := make([][]string, 0, len(v.Notable))
	for _, m := range v.Notable {
		rows = append(rows, []string{
			m.Name,
			p.Category(m.Category, string(m.Category)),
			priceNote(m),
			util.WrapToWidth(m.BestFor, noteWidth/2),
			util.WrapToWidth(m.Pros, noteWidth),
			util.WrapToWidth(m.Cons, noteWidth),
		})
	}
	return write(w, Table(hs, rows), len(rows), "No notable mentions in this catalog.")
}

func priceNote(m catalog.Model) string {
	if m.PriceNote != "" {
		return m.PriceNote
	}
	return cost.PriceLabel(m)
}

// Categories writes the category legend.
func Categories(w io.Writer, p Palette) error {
	rows := [][]string{}
	for _, c := range catalog.Categories() {
		rows = append(rows, []string{p.Category(c.Name, string(c.Name)), c.Color, util.WrapToWidth(c.Description, noteWidth*2)})
	}
	_, err := fmt.Fprintln(w, Table(headers(p, "Category", "Color", "Description"), rows))
	return err
}

const noMatches = "No models match the current filters."

func write(w io.Writer, rendered string, n int, empty string) error {
	if n == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	_, err := fmt.Fprintln(w, rendered)
	return err
}
