package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/parquet"
	"github.com/langradar/langradar/internal/radar"
	"github.com/langradar/langradar/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// emptySelectionNotice is printed by the text comparison panel when nothing is selected.
const emptySelectionNotice = "No languages selected. Pick up to 3 languages to compare."

// WriteComparisonResults writes the comparison panel in the configured format.
func WriteComparisonResults(w io.Writer, result schema.ComparisonResult, cfg *contract.Config) error {
	fmtFloat := scoreFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForComparison(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForComparison(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteComparisonParquet(parquet.ConvertComparison(result.Series), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportWrite(schema.ParquetOut, cfg.OutputFile)
	case schema.SVGOut:
		if err := radar.NewSVGRenderer().RenderComparisonChart(w, result.Chart); err != nil {
			return fmt.Errorf("error writing SVG output: %w", err)
		}
	default:
		return writeComparisonText(w, result, cfg, fmtFloat)
	}
	return nil
}

// writeComparisonText writes the comparison table, the overlaid chart and the
// full detail cards in selection order.
func writeComparisonText(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(result.Languages) == 0 {
		_, err := fmt.Fprintln(w, emptySelectionNotice)
		return err
	}

	if err := writeComparisonTable(w, result, fmtFloat); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := newTextRenderer(cfg).RenderComparisonChart(w, result.Chart); err != nil {
		return err
	}
	for _, l := range result.Languages {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := writeDetailCard(w, l, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeComparisonTable writes one row per subject and one column per selected language.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Subject"}
	for _, l := range result.Languages {
		headers = append(headers, l.Name)
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range result.Series {
		row := []string{string(r.Subject)}
		for _, v := range r.Values {
			row = append(row, fmtFloat(v.Value))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForComparison writes the comparison series with one column per language.
func writeCSVResultsForComparison(w io.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	header := []string{"subject"}
	for _, l := range result.Languages {
		header = append(header, l.Name)
	}
	return writeCSVTable(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range result.Series {
			rec := []string{string(r.Subject)}
			for _, v := range r.Values {
				rec = append(rec, fmtFloat(v.Value))
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForComparison writes the selection, the flat comparison rows and the detail cards.
func writeJSONResultsForComparison(w io.Writer, result schema.ComparisonResult) error {
	result.Selection = nonNil(result.Selection)
	result.Languages = nonNil(result.Languages)
	result.Series = nonNil(result.Series)
	return writeJSON(w, result)
}
