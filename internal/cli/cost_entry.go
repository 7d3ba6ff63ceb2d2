package llmcompare

import (
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/spf13/cobra"
)

func runCost(cmd *cobra.Command) error {
	v, p, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return render.Cost(cmd.OutOrStdout(), v, p)
}

func runCostTasks(cmd *cobra.Command) error {
	v, p, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return render.Tasks(cmd.OutOrStdout(), v, p)
}
