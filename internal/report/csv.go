// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mwiater/llmcompare/internal/compare"
)

func score(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func csvHeader() []string {
	header := []string{"id", "name", "category", "free", "open_source", "enabled", "baseline", "input_price", "output_price"}
	for _, metric := range compare.Metrics() {
		header = append(header, string(metric), string(metric)+"_pct", string(metric)+"_label")
	}
	return header
}

// writeCSV writes one row per visible model with absolute values, percent of
// baseline and the rendered label. Percentages are empty when not applicable.
func writeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader()); err != nil {
		return err
	}
	for _, row := range doc.Rows {
		record := []string{
			strconv.Itoa(row.ID),
			row.Name,
			row.Category,
			strconv.FormatBool(row.Free),
			strconv.FormatBool(row.OpenSource),
			strconv.FormatBool(row.Enabled),
			strconv.FormatBool(row.IsBaseline),
			strconv.FormatFloat(row.InputPrice, 'f', -1, 64),
			strconv.FormatFloat(row.OutputPrice, 'f', -1, 64),
		}
		for _, metric := range compare.Metrics() {
			c := row.Cell(metric)
			value := strconv.FormatFloat(c.Value, 'f', -1, 64)
			pct := ""
			if c.Applicable {
				pct = strconv.FormatFloat(c.Percent, 'f', 2, 64)
			}
			record = append(record, value, pct, c.Label)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
