// internal/report/markdown.go
package report

import (
	"fmt"
	"io"
	"strings"
)

func mdEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

func mdRow(w io.Writer, cells ...string) {
	for i := range cells {
		cells[i] = mdEscape(cells[i])
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

func mdRule(w io.Writer, n int) {
	fmt.Fprintf(w, "|%s\n", strings.Repeat(" --- |", n))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func writeMarkdown(out io.Writer, doc Document) error {
	w := &errWriter{w: out}

	fmt.Fprintf(w, "# %s\n\n", doc.Title)
	s := doc.Summary
	fmt.Fprintf(w, "- **Models:** %d of %d (%d enabled)\n", s.Visible, s.Total, s.Enabled)
	fmt.Fprintf(w, "- **Free:** %d\n- **Open Source:** %d\n", s.Free, s.OpenSource)
	fmt.Fprintf(w, "- **Avg MMLU:** %s\n- **Avg Cost:** %s at %s\n", s.AverageMMLU, s.AverageCost, s.Scenario)
	if doc.Baseline != nil {
		fmt.Fprintf(w, "- **Baseline:** %s (%s mode)\n", doc.Baseline.Name, doc.State.Mode)
	}

	fmt.Fprintf(w, "\n## Comparison\n\n")
	if len(doc.Rows) == 0 {
		fmt.Fprintln(w, "_No models match the current filters._")
	} else {
		header := []string{"Model", "Category", "Price"}
		for _, m := range doc.Metrics {
			header = append(header, m.Label)
		}
		mdRow(w, header...)
		mdRule(w, len(header))
		for _, row := range doc.Rows {
			name := row.Name
			if row.IsBaseline {
				name = "**" + name + "** (baseline)"
			}
			cells := []string{name, row.Category, row.Price}
			for _, c := range row.Cells {
				if c.Free || c.Label == "" {
					cells = append(cells, c.Display)
					continue
				}
				cells = append(cells, fmt.Sprintf("%s (%s)", c.Display, c.Label))
			}
			mdRow(w, cells...)
		}
	}

	fmt.Fprintf(w, "\n## Cost by Task Type\n\n")
	header := []string{"Model"}
	for _, p := range doc.Tasks.Profiles {
		header = append(header, fmt.Sprintf("%s (%d/%d)", p.Name, p.InputTokens, p.OutputTokens))
	}
	mdRow(w, header...)
	mdRule(w, len(header))
	for _, r := range doc.Tasks.Rows {
		mdRow(w, append([]string{r.Name}, r.Costs...)...)
	}

	if len(doc.Notable) > 0 {
		fmt.Fprintf(w, "\n## Notable Mentions\n\n")
		mdRow(w, "Model", "Category", "Price", "Best For", "Pros", "Cons")
		mdRule(w, 6)
		for _, n := range doc.Notable {
			mdRow(w, n.Name, n.Category, n.Price, n.BestFor, n.Pros, n.Cons)
		}
	}
	return w.err
}
