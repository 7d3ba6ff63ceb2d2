package appconfig

import (
	"fmt"
	"io"

	"github.com/mwiater/llmcompare/internal/util"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	st := cfg.DefaultState()
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %s\n", util.YesNo(cfg.Debug))
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Log Level:       %s\n", cfg.Level())
	fmt.Fprintf(out, "  No Color:        %s\n", util.YesNo(cfg.NoColor))
	fmt.Fprintf(out, "  Server Address:  %s\n", cfg.ServerAddress())
	if cfg.CatalogPath == "" {
		fmt.Fprintln(out, "  Catalog:         built-in")
	} else {
		fmt.Fprintf(out, "  Catalog:         %s\n", cfg.CatalogPath)
	}
	fmt.Fprintln(out, "  Defaults:")
	fmt.Fprintf(out, "    Sort:          %s %s\n", st.SortKey, st.Direction)
	fmt.Fprintf(out, "    Search:        %q\n", st.Search)
	fmt.Fprintf(out, "    Free/OSS Only: %s\n", util.YesNo(st.FreeOrOpenSourceOnly))
	fmt.Fprintf(out, "    Show Disabled: %s\n", util.YesNo(st.ShowDisabled))
	fmt.Fprintf(out, "    Baseline ID:   %d\n", st.BaselineID)
	fmt.Fprintf(out, "    Scenario:      %s\n", st.Scenario)
	fmt.Fprintf(out, "    Mode:          %s\n", st.Mode)
}
