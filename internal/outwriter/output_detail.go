package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/parquet"
	"github.com/langradar/langradar/internal/radar"
	"github.com/langradar/langradar/schema"
)

// WriteDetailResults writes the full card and radar chart of one language.
func WriteDetailResults(w io.Writer, result schema.DetailResult, cfg *contract.Config) error {
	fmtFloat := scoreFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForDetail(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForDetail(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertLanguages(schema.EnrichLanguages([]schema.Language{result.Language}, nil))
		if err := parquet.WriteLanguagesParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportWrite(schema.ParquetOut, cfg.OutputFile)
	case schema.SVGOut:
		if err := radar.NewSVGRenderer().RenderMetricChart(w, result.Chart); err != nil {
			return fmt.Errorf("error writing SVG output: %w", err)
		}
	default:
		return writeDetailText(w, result, cfg, fmtFloat)
	}
	return nil
}

// writeDetailText writes the card, the terminal radar chart and the average.
func writeDetailText(w io.Writer, result schema.DetailResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := writeDetailCard(w, result.Language, cfg); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := newTextRenderer(cfg).RenderMetricChart(w, result.Chart); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average: %s/%s (%s)\n",
		fmtFloat(result.Average), schema.FormatValue(schema.ScaleMax), scoreLabel(result.Average, cfg.UseColors))
	return err
}

// writeCSVResultsForDetail writes one record per chart axis.
func writeCSVResultsForDetail(w io.Writer, result schema.DetailResult, fmtFloat func(float64) string) error {
	header := []string{"id", "name", "subject", "alias", "score", "max_score", "label"}
	return writeCSVTable(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range result.Chart.Points {
			alias := ""
			if info, ok := schema.LookupSubject(p.Subject); ok {
				alias = info.Alias
			}
			rec := []string{
				result.ID,
				result.Name,
				string(p.Subject),
				alias,
				fmtFloat(p.Value),
				fmtFloat(p.MaxValue),
				contract.GetPlainLabel(p.Value),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForDetail writes the language with its average and label.
func writeJSONResultsForDetail(w io.Writer, result schema.DetailResult) error {
	type JSONDetailResult struct {
		Label string `json:"label"`
		schema.DetailResult
	}
	return writeJSON(w, JSONDetailResult{Label: contract.GetPlainLabel(result.Average), DetailResult: result})
}
