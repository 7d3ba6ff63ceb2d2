package llmcompare

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mwiater/llmcompare/internal/logging"
	"github.com/mwiater/llmcompare/internal/report"
	"github.com/mwiater/llmcompare/internal/util"
	"github.com/spf13/cobra"
)

func runExport(cmd *cobra.Command) error {
	rawFormat, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := exportFormat(rawFormat, output)
	if err != nil {
		return err
	}
	v, _, err := evaluate(cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, v); err != nil {
		return err
	}
	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := util.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logging.LogEvent("[EXPORT] wrote %s report for %d models to %s", format, len(v.Visible), output)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	return nil
}

// exportFormat prefers --format and falls back to the output extension.
func exportFormat(raw, output string) (report.Format, error) {
	if raw != "" {
		return report.ParseFormat(raw)
	}
	if ext := filepath.Ext(output); ext != "" {
		return report.ParseFormat(ext)
	}
	return "", errors.New("--format is required when --output has no file extension")
}
