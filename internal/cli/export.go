// internal/cli/export.go
package llmcompare

import (
	"github.com/spf13/cobra"
)

// exportCmd writes a report of the current view.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a comparison report (html, markdown, csv, json, yaml)",
	Long: `The 'export' command renders the comparison for the given filters, baseline
and scenario as a report. Without --output the report is written to stdout.
When --format is omitted it is taken from the --output file extension.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addListFlags(exportCmd)
	addCompareFlags(exportCmd)
	addCostFlags(exportCmd)
	exportCmd.Flags().StringP("format", "f", "", "report format: html, markdown, csv, json, yaml")
	exportCmd.Flags().StringP("output", "o", "", "write the report to this file")
}
