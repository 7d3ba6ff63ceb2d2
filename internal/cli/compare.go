// internal/cli/compare.go
package llmcompare

import (
	"github.com/spf13/cobra"
)

// compareCmd prints every visible model relative to the baseline.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare models against a baseline model",
	Long: `The 'compare' command shows each visible model's benchmark scores and
scenario cost next to a badge relative to the baseline: a percentage of the
baseline value, or a signed difference with --mode delta. Badges are green
when better than the baseline, yellow when within five percent and red when
worse. Cost badges count lower as better.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addListFlags(compareCmd)
	addCompareFlags(compareCmd)
	addCostFlags(compareCmd)
	compareCmd.Flags().String("metric", "all", "metrics to compare: all, or a comma-separated list of mmlu, hellaswag, humaneval, gpqa, cost")
}
