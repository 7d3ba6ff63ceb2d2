package llmcompare

import (
	"fmt"
	"strings"

	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/spf13/cobra"
)

func runCompare(cmd *cobra.Command) error {
	raw, _ := cmd.Flags().GetString("metric")
	metrics, err := parseMetrics(raw)
	if err != nil {
		return err
	}
	v, p, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return render.Compare(cmd.OutOrStdout(), v, metrics, p)
}

// parseMetrics resolves "all" or a comma-separated metric list, keeping the
// given order and dropping repeats.
func parseMetrics(raw string) ([]compare.Metric, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return compare.Metrics(), nil
	}
	var out []compare.Metric
	seen := map[compare.Metric]bool{}
	for _, part := range strings.Split(raw, ",") {
		m, ok := compare.ParseMetric(part)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q", strings.TrimSpace(part))
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}
