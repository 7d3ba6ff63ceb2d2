// internal/cli/list.go
package llmcompare

import (
	"github.com/spf13/cobra"
)

// listCmd prints the visible catalog records with their absolute values.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog models with scores and prices",
	Long:  `The 'list' command prints every visible model with its benchmark scores, per-million token prices, context window and access flags. Filters and sort order come from the flags, falling back to the configured defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addListFlags(listCmd)
}
