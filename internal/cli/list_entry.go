package llmcompare

import (
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/spf13/cobra"
)

func runList(cmd *cobra.Command) error {
	v, p, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return render.Models(cmd.OutOrStdout(), v, p)
}

func runListCategories(cmd *cobra.Command) error {
	return render.Categories(cmd.OutOrStdout(), palette())
}
