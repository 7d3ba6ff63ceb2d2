// internal/cli/cost.go
package llmcompare

import (
	"github.com/spf13/cobra"
)

// costCmd prints the estimated cost of the scenario for every visible model.
var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate token cost for a usage scenario",
	Long:  `The 'cost' command estimates (input tokens x input price + output tokens x output price) / 1,000,000 for every visible model. The scenario comes from --in/--out, or from a task profile with --task.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCost(cmd)
	},
}

// costTasksCmd prints the cost of every task profile for every visible model.
var costTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Estimate cost for each task profile",
	Long:  `The 'tasks' subcommand prints a cost-by-task table: one row per visible model, one column per task profile from "Quick Question" to "Complex Analysis".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCostTasks(cmd)
	},
}

func init() {
	rootCmd.AddCommand(costCmd)
	addListFlags(costCmd)
	addCompareFlags(costCmd)
	addCostFlags(costCmd)

	costCmd.AddCommand(costTasksCmd)
	addListFlags(costTasksCmd)
}
