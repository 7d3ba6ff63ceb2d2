package llmcompare

import (
	"fmt"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/spf13/cobra"
)

func runCatalogValidate(cmd *cobra.Command, path string) error {
	models, err := catalog.Load(path)
	if err != nil {
		return err
	}
	source := path
	if source == "" {
		source = "built-in catalog"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK, %d models (%d enabled, %d notable mentions)\n",
		source, len(models), len(catalog.Enabled(models)), len(catalog.Disabled(models)))
	return nil
}

func runCatalogShow(cmd *cobra.Command, rawID string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("model id must be an integer, got %q", rawID)
	}
	models, err := loadCatalog()
	if err != nil {
		return err
	}
	m, ok := catalog.Find(models, id)
	if !ok {
		return fmt.Errorf("no model with id %d", id)
	}
	out := cmd.OutOrStdout()
	if getConfig().NoColor {
		fmt.Fprintf(out, "%+v\n", m)
		return nil
	}
	_, err = pp.Fprintln(out, m)
	return err
}
