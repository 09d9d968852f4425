// Package outwriter has output and writer logic.
package outwriter

import (
	"io"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
)

// OutWriter routes every result to stdout or the configured output file.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteLanguages prints the ranked list view using the configured output format.
func (ow *OutWriter) WriteLanguages(result schema.ListResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error {
		return WriteLanguageResults(w, result, cfg)
	})
}

// WriteDetail prints one language card using the configured output format.
func (ow *OutWriter) WriteDetail(result schema.DetailResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error {
		return WriteDetailResults(w, result, cfg)
	})
}

// WriteComparison prints the comparison panel using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error {
		return WriteComparisonResults(w, result, cfg)
	})
}

// WriteSubjects prints the sort keys and scale using the configured output format.
func (ow *OutWriter) WriteSubjects(result schema.SubjectsResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error {
		return WriteSubjectResults(w, result, cfg)
	})
}

// write opens the output target for every format except parquet, which
// manages its own file.
func (ow *OutWriter) write(cfg *contract.Config, fn func(io.Writer) error) error {
	if cfg.Output == schema.ParquetOut {
		return fn(io.Discard)
	}
	return writeWithFile(cfg.OutputFile, cfg.Output, fn)
}
