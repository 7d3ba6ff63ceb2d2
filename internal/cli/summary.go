// internal/cli/summary.go
package llmcompare

import (
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/spf13/cobra"
)

// summaryCmd prints the aggregate statistics of the visible models.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show summary statistics for the visible models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, p, err := evaluate(cmd)
		if err != nil {
			return err
		}
		return render.Summary(cmd.OutOrStdout(), v, p)
	},
}

// notableCmd prints the disabled models kept as notable mentions.
var notableCmd = &cobra.Command{
	Use:   "notable",
	Short: "Show notable mentions with their pros and cons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, p, err := evaluate(cmd)
		if err != nil {
			return err
		}
		return render.Notable(cmd.OutOrStdout(), v, p)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addListFlags(summaryCmd)
	addCostFlags(summaryCmd)

	rootCmd.AddCommand(notableCmd)
}
