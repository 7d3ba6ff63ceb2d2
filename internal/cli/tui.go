// internal/cli/tui.go
package llmcompare

import (
	"github.com/mwiater/llmcompare/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd starts the interactive comparison board.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive comparison board",
	Long: `The 'tui' command opens a full-screen board with the comparison table, a
cost-by-task view, notable mentions and a baseline picker. Press ? inside the
board for key bindings. Logs go to the log file only.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{loggingAnnotation: "file"},
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := loadCatalog()
		if err != nil {
			return err
		}
		st, err := resolveState(cmd)
		if err != nil {
			return err
		}
		return tui.StartTUI(cmd.Context(), models, st)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addListFlags(tuiCmd)
	addCompareFlags(tuiCmd)
	addCostFlags(tuiCmd)
}
