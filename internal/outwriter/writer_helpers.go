package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
)

// writeWithFile renders one result to stdout, or to outputFile when it is set.
// File writes end with a status line naming the format.
func writeWithFile(outputFile string, mode schema.OutputMode, render func(io.Writer) error) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := file != os.Stdout
	if toFile {
		defer func() { _ = file.Close() }()
	}

	if err := render(file); err != nil {
		return err
	}
	if toFile {
		reportWrite(mode, outputFile)
	}
	return nil
}

// reportWrite prints the file status line on stderr so stdout stays clean.
func reportWrite(mode schema.OutputMode, outputFile string) {
	_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMessage(mode), outputFile)
}

// successMessage is the status line printed after writing to a file.
func successMessage(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON"
	case schema.CSVOut:
		return "Wrote CSV"
	case schema.SVGOut:
		return "Wrote SVG"
	case schema.ParquetOut:
		return "Wrote Parquet"
	default:
		return "Wrote table"
	}
}

// writeJSON encodes a result with two-space indentation.
func writeJSON(w io.Writer, result any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVTable writes the header, lets writeRows add one record per row and flushes.
func writeCSVTable(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// scoreFormatter renders scores with the configured number of decimals.
func scoreFormatter(precision int) func(float64) string {
	precision = min(max(precision, 0), contract.MaxPrecision)
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}
