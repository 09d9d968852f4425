package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	"github.com/olekukonko/tablewriter"
)

// defaultSortLabel names the natural-order sort option.
const defaultSortLabel = "Varsayılan Sıralama"

// WriteSubjectResults writes the sort keys, their direction policy and the shared scale.
func WriteSubjectResults(w io.Writer, result schema.SubjectsResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForSubjects(w, result); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut, schema.SVGOut:
		return fmt.Errorf("%s output is not available for subjects", cfg.Output)
	default:
		return writeSubjectsTable(w, result)
	}
	return nil
}

// direction describes the ranking direction of a subject.
func direction(higherIsBetter bool) string {
	if higherIsBetter {
		return "highest first"
	}
	return "lowest first"
}

// writeSubjectsTable writes one row per sort key, natural order first.
func writeSubjectsTable(w io.Writer, result schema.SubjectsResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Sort Key", "Alias", "Option", "Direction", "Description"})

	data := [][]string{
		{string(schema.NoSort), string(schema.NoSort), defaultSortLabel, "catalog order", "Natural catalog order"},
	}
	for _, s := range result.Subjects {
		data = append(data, []string{string(s.Subject), s.Alias, s.SortLabel, direction(s.HigherIsBetter), s.Description})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Scale: %s-%s on %d axes\n",
		schema.FormatValue(result.Scale.Min), schema.FormatValue(result.Scale.Max), len(result.Scale.Axes))
	return err
}

// writeCSVResultsForSubjects writes one record per subject.
func writeCSVResultsForSubjects(w io.Writer, result schema.SubjectsResult) error {
	header := []string{"subject", "alias", "option", "higher_is_better", "description", "min", "max"}
	return writeCSVTable(w, header, func(csvWriter *csv.Writer) error {
		for _, s := range result.Subjects {
			rec := []string{
				string(s.Subject),
				s.Alias,
				s.SortLabel,
				strconv.FormatBool(s.HigherIsBetter),
				s.Description,
				schema.FormatValue(result.Scale.Min),
				schema.FormatValue(result.Scale.Max),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
