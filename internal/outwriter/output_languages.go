package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/parquet"
	"github.com/langradar/langradar/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// selectedMark flags selected languages in list output.
const selectedMark = "●"

// WriteLanguageResults writes the ranked list view to w in the configured format.
// Parquet output goes to cfg.OutputFile instead of w.
func WriteLanguageResults(w io.Writer, result schema.ListResult, cfg *contract.Config) error {
	fmtFloat := scoreFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForLanguages(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForLanguages(w, result.Entries, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteLanguagesParquet(parquet.ConvertLanguages(result.Entries), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportWrite(schema.ParquetOut, cfg.OutputFile)
	case schema.SVGOut:
		return fmt.Errorf("svg output is only available for show and compare")
	default:
		if len(result.Entries) == 0 {
			return writeEmptyNotice(w, result)
		}
		if cfg.Preview {
			return writeLanguageCards(w, result, cfg)
		}
		return writeLanguageTable(w, result, cfg, fmtFloat)
	}
	return nil
}

// writeLanguageTable writes the list as a table with one score column per subject.
func writeLanguageTable(w io.Writer, result schema.ListResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Name"}
	for _, s := range schema.AllSubjects() {
		headers = append(headers, string(s))
	}
	headers = append(headers, "Avg", "Label")
	if cfg.Detail {
		headers = append(headers, "Philosophy")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	textWidth := getMaxTableTextWidth(cfg)
	var data [][]string
	for _, l := range result.Entries {
		idx := l.Index()
		name := l.Name
		if l.Selected {
			name = selectedMark + " " + name
		}
		row := []string{strconv.Itoa(l.Rank), name}
		for _, s := range schema.AllSubjects() {
			row = append(row, fmtFloat(idx[s]))
		}
		row = append(row, fmtFloat(l.Average), scoreLabel(l.Average, cfg.UseColors))
		if cfg.Detail {
			row = append(row, schema.Truncate(l.Philosophy, textWidth))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeListFooter(w, result)
}

// writeLanguageCards writes one card per entry: summary line, radar bars and
// the first PreviewItems pros and cons.
func writeLanguageCards(w io.Writer, result schema.ListResult, cfg *contract.Config) error {
	renderer := newTextRenderer(cfg)
	for i, l := range result.Entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("%2d. %s", l.Rank, l.Name)
		if l.Selected {
			title += " " + selectedMark
		}
		if _, err := fmt.Fprintf(w, "%s\n    %s\n", title, summaryLine(l.Language)); err != nil {
			return err
		}
		if l.Philosophy != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", l.Philosophy); err != nil {
				return err
			}
		}
		if i < len(result.Charts) {
			if err := renderer.RenderMetricChart(w, result.Charts[i]); err != nil {
				return err
			}
		}
		if err := writeItems(w, "    ", schema.Preview(l.Pros), schema.Preview(l.Cons)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeListFooter(w, result)
}

// summaryLine is the short score summary of a card: "Performans 9.5/10 · Öğrenme 5/10".
func summaryLine(l schema.Language) string {
	idx := l.Index()
	return fmt.Sprintf("%s %s · %s %s",
		schema.Performance, schema.FormatScore(idx[schema.Performance], schema.ScaleMax),
		schema.Learning, schema.FormatScore(idx[schema.Learning], schema.ScaleMax),
	)
}

// writeListFooter writes the count, active filters and selection size.
func writeListFooter(w io.Writer, result schema.ListResult) error {
	line := fmt.Sprintf("Showing %d of %d languages", len(result.Entries), result.CatalogSize)
	if result.SearchQuery != "" {
		line += fmt.Sprintf(" matching %q", result.SearchQuery)
	}
	if subject, ok := result.SortKey.Subject(); ok {
		line += fmt.Sprintf(", sorted by %s", subject)
	}
	line += fmt.Sprintf(" (%d/%d selected)", len(result.Selection), schema.MaxSelection)
	_, err := fmt.Fprintln(w, line)
	return err
}

// writeEmptyNotice writes the empty-result state together with the way to reset filters.
func writeEmptyNotice(w io.Writer, result schema.ListResult) error {
	if _, err := fmt.Fprintf(w, "No languages match %q.\n", result.SearchQuery); err != nil {
		return err
	}
	hint := result.ResetHint
	if hint == "" {
		hint = "Clear the search and sort to see all " + strconv.Itoa(result.CatalogSize) + " languages."
	}
	_, err := fmt.Fprintln(w, hint)
	return err
}

// writeCSVResultsForLanguages writes one record per entry with every score and the full pros/cons.
func writeCSVResultsForLanguages(w io.Writer, entries []schema.EnrichedLanguage, fmtFloat func(float64) string) error {
	header := []string{"rank", "id", "name", "color", "selected"}
	for _, s := range schema.Subjects {
		header = append(header, s.Alias)
	}
	header = append(header, "average", "label", "philosophy", "pros", "cons")

	return writeCSVTable(w, header, func(csvWriter *csv.Writer) error {
		for _, l := range entries {
			idx := l.Index()
			rec := []string{
				strconv.Itoa(l.Rank),
				l.ID,
				l.Name,
				l.Color,
				strconv.FormatBool(l.Selected),
			}
			for _, s := range schema.Subjects {
				rec = append(rec, fmtFloat(idx[s.Subject]))
			}
			rec = append(rec,
				fmtFloat(l.Average),
				contract.GetPlainLabel(l.Average),
				l.Philosophy,
				schema.JoinItems(l.Pros),
				schema.JoinItems(l.Cons),
			)
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForLanguages writes the list view with a label added to every entry.
func writeJSONResultsForLanguages(w io.Writer, result schema.ListResult) error {
	type JSONLanguage struct {
		Label string `json:"label"`
		schema.EnrichedLanguage
	}
	type JSONListResult struct {
		SearchQuery string         `json:"search_query"`
		SortKey     schema.SortKey `json:"sort_key"`
		CatalogSize int            `json:"catalog_size"`
		Selection   []string       `json:"selection"`
		Entries     []JSONLanguage `json:"entries"`
	}

	output := JSONListResult{
		SearchQuery: result.SearchQuery,
		SortKey:     result.SortKey,
		CatalogSize: result.CatalogSize,
		Selection:   nonNil(result.Selection),
		Entries:     make([]JSONLanguage, len(result.Entries)),
	}
	for i, l := range result.Entries {
		output.Entries[i] = JSONLanguage{Label: contract.GetPlainLabel(l.Average), EnrichedLanguage: l}
	}
	return writeJSON(w, output)
}
