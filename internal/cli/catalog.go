// internal/cli/catalog.go
package llmcompare

import (
	"github.com/spf13/cobra"
)

// catalogCmd groups commands that inspect catalog files.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Group commands for inspecting the model catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Validate a catalog file, or the configured catalog",
	Long:  `The 'validate' subcommand checks a catalog file against the catalog schema and the record rules: unique positive ids, known categories, non-negative prices, scores within 0-100, and free models priced at zero. Without FILE the configured catalog is checked.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfig().CatalogPath
		if len(args) == 1 {
			path = args[0]
		}
		return runCatalogValidate(cmd, path)
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print every field of one catalog record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogShow(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
