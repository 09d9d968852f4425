// Package parquet provides data structures and functions for exporting langradar
// catalog views to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/langradar/langradar/schema"
	"github.com/parquet-go/parquet-go"
)

// LanguageRow represents one ranked catalog entry of a list view.
type LanguageRow struct {
	// Rank is the 1-based position in the visible list
	Rank int32 `parquet:"rank,snappy"`

	// ID is the stable language id
	ID string `parquet:"id,snappy"`

	// Name is the display name
	Name string `parquet:"name,snappy"`

	// Color is the accent color token
	Color string `parquet:"color,snappy"`

	// Philosophy is the short motto (nullable when empty)
	Philosophy *string `parquet:"philosophy,optional,snappy"`

	// Pros and Cons are pipe-joined lists in display order
	Pros string `parquet:"pros,snappy"`
	Cons string `parquet:"cons,snappy"`

	// Selected marks languages that are part of the comparison selection
	Selected bool `parquet:"selected"`

	// Per-subject scores on the 0-10 scale
	ScorePerformance float64 `parquet:"score_performance,snappy"`
	ScoreLearning    float64 `parquet:"score_learning,snappy"`
	ScoreEcosystem   float64 `parquet:"score_ecosystem,snappy"`
	ScoreFlexibility float64 `parquet:"score_flexibility,snappy"`
	ScoreDevSpeed    float64 `parquet:"score_devspeed,snappy"`
	ScoreCareer      float64 `parquet:"score_career,snappy"`

	// ScoreAverage is the mean over the six subjects
	ScoreAverage float64 `parquet:"score_average,snappy"`
}

// ComparisonRow is one cell of the comparison series in long format.
type ComparisonRow struct {
	// Subject is the axis label
	Subject string `parquet:"subject,snappy"`

	// Position is the 1-based selection order of the language
	Position int32 `parquet:"position,snappy"`

	// Language is the series name
	Language string `parquet:"language,snappy"`

	// Score is the language's value for the subject
	Score float64 `parquet:"score,snappy"`
}

// WriteLanguagesParquet writes a slice of LanguageRow structs to a Parquet file.
func WriteLanguagesParquet(data []LanguageRow, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteComparisonParquet writes a slice of ComparisonRow structs to a Parquet file.
func WriteComparisonParquet(data []ComparisonRow, outputPath string) error {
	return writeFile(data, outputPath)
}

// writeFile creates outputPath and writes every row into it.
func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRows(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// writeRows streams rows through a GenericWriter. The schema is derived from the struct tags.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertLanguages converts enriched list entries to LanguageRow for Parquet export.
func ConvertLanguages(langs []schema.EnrichedLanguage) []LanguageRow {
	result := make([]LanguageRow, len(langs))
	for i, l := range langs {
		idx := l.Index()
		var philosophy *string
		if l.Philosophy != "" {
			p := l.Philosophy
			philosophy = &p
		}
		result[i] = LanguageRow{
			Rank:             int32(l.Rank),
			ID:               l.ID,
			Name:             l.Name,
			Color:            l.Color,
			Philosophy:       philosophy,
			Pros:             schema.JoinItems(l.Pros),
			Cons:             schema.JoinItems(l.Cons),
			Selected:         l.Selected,
			ScorePerformance: idx[schema.Performance],
			ScoreLearning:    idx[schema.Learning],
			ScoreEcosystem:   idx[schema.Ecosystem],
			ScoreFlexibility: idx[schema.Flexibility],
			ScoreDevSpeed:    idx[schema.DevSpeed],
			ScoreCareer:      idx[schema.Career],
			ScoreAverage:     l.Average,
		}
	}
	return result
}

// ConvertComparison flattens comparison rows into one record per subject and language.
func ConvertComparison(rows []schema.ComparisonRow) []ComparisonRow {
	var result []ComparisonRow
	for _, r := range rows {
		for i, v := range r.Values {
			result = append(result, ComparisonRow{
				Subject:  string(r.Subject),
				Position: int32(i + 1),
				Language: v.Name,
				Score:    v.Value,
			})
		}
	}
	return result
}
