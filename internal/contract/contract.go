// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"io"

	"github.com/langradar/langradar/schema"
)

// CatalogSource is an immutable data source for the language catalog.
// The engine never writes back to it.
type CatalogSource interface {
	// Load returns every catalog entry in natural order.
	Load(ctx context.Context) ([]schema.Language, error)

	// Describe returns a human readable name of the source, used in logs.
	Describe() string
}

// CatalogStore is a SQL-backed catalog source that can be (re)imported.
type CatalogStore interface {
	CatalogSource

	// Import replaces the stored catalog with the given entries.
	Import(ctx context.Context, entries []schema.Language) error

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.CatalogStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// MetricChartRenderer draws the radar chart of a single language.
type MetricChartRenderer interface {
	RenderMetricChart(w io.Writer, chart schema.MetricChart) error
}

// ComparisonChartRenderer draws the overlaid radar chart of the selected languages.
type ComparisonChartRenderer interface {
	RenderComparisonChart(w io.Writer, chart schema.ComparisonChart) error
}

// ChartRenderer draws both chart kinds on the same shared scale.
type ChartRenderer interface {
	MetricChartRenderer
	ComparisonChartRenderer
}

// ResultWriter prints command results in the configured output format.
type ResultWriter interface {
	WriteLanguages(result schema.ListResult, cfg *Config) error
	WriteDetail(result schema.DetailResult, cfg *Config) error
	WriteComparison(result schema.ComparisonResult, cfg *Config) error
	WriteSubjects(result schema.SubjectsResult, cfg *Config) error
}
