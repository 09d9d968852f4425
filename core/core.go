// Package core has the catalog view engine and the command executors built on it.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/langradar/langradar/internal/catalog"
	"github.com/langradar/langradar/internal/catalogdb"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/internal/outwriter"
	"github.com/langradar/langradar/schema"
	"go.uber.org/zap"
)

// ExecutorFunc defines the function signature for executing the catalog commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, source contract.CatalogSource, args []string) error

// errMissingID is returned by show when no language id is given.
var errMissingID = errors.New("a language id is required")

// OpenCatalogSource resolves the configured catalog backend into a source.
// The returned close function releases database connections and is never nil.
func OpenCatalogSource(cfg *contract.Config) (contract.CatalogSource, func() error, error) {
	noop := func() error { return nil }
	switch {
	case cfg.CatalogBackend == schema.FileBackend:
		return catalog.FileSource{Path: cfg.CatalogSource}, noop, nil
	case cfg.CatalogBackend.IsDatabase():
		store, err := catalogdb.NewStore(cfg.CatalogBackend, cfg.CatalogSource)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return catalog.NewCatalog(), noop, nil
	}
}

// LoadEngine loads the catalog from source and builds an engine over it.
// The engine logs through the logger stored in ctx.
func LoadEngine(ctx context.Context, source contract.CatalogSource) (*Engine, error) {
	entries, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source.Describe(), err)
	}
	logger := logging.FromContext(ctx)
	logger.Debug("catalog loaded", zap.String("source", source.Describe()), zap.Int("entries", len(entries)))
	return NewEngine(entries, WithLogger(logger)), nil
}

// logCatalogHeader prints a one-line header for text output on stdout.
func logCatalogHeader(ctx context.Context, cfg *contract.Config, source contract.CatalogSource, size int) {
	if shouldSuppressHeader(ctx) || cfg.Output != schema.TextOut || cfg.OutputFile != "" {
		return
	}
	fmt.Printf("🔎 Catalog: %s (%d languages)\n", source.Describe(), size)
}

// ExecuteList applies the configured search and sort and prints the ranked list.
func ExecuteList(ctx context.Context, cfg *contract.Config, source contract.CatalogSource, _ []string) error {
	e, err := LoadEngine(ctx, source)
	if err != nil {
		return err
	}
	if err := ApplyFilters(e, cfg); err != nil {
		return err
	}
	logCatalogHeader(ctx, cfg, source, len(e.Catalog()))

	result := GetListResults(e, cfg)
	result.ResetHint = "Run again without --search and --sort to clear filters."
	return outwriter.NewOutWriter().WriteLanguages(result, cfg)
}

// ExecuteShow prints the full card and radar chart of the language named by args[0].
func ExecuteShow(ctx context.Context, cfg *contract.Config, source contract.CatalogSource, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	e, err := LoadEngine(ctx, source)
	if err != nil {
		return err
	}
	result, err := GetDetailResult(e, args[0])
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDetail(result, cfg)
}

// ExecuteCompare selects the given ids in order and prints the comparison panel.
// Unknown ids and ids beyond the selection cap are reported as warnings.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, source contract.CatalogSource, args []string) error {
	e, err := LoadEngine(ctx, source)
	if err != nil {
		return err
	}
	logCatalogHeader(ctx, cfg, source, len(e.Catalog()))

	unknown, rejected := SelectAll(e, args)
	warnSelection(advisoryWriter(ctx), unknown, rejected)

	result := GetComparisonResult(e)
	result.Unknown = unknown
	result.Rejected = rejected
	return outwriter.NewOutWriter().WriteComparison(result, cfg)
}

// ExecuteSubjects prints the sort keys and the shared metric scale.
func ExecuteSubjects(_ context.Context, cfg *contract.Config, _ contract.CatalogSource, _ []string) error {
	return outwriter.NewOutWriter().WriteSubjects(GetSubjectsResult(schema.DefaultScale()), cfg)
}

// warnSelection prints the advisories of a bulk selection.
func warnSelection(w io.Writer, unknown, rejected []string) {
	for _, id := range unknown {
		_, _ = fmt.Fprintf(w, "Warn ignoring unknown language: %s\n", id)
	}
	for _, id := range rejected {
		_, _ = fmt.Fprintf(w, "Warn cannot select %s: %v\n", id, ErrSelectionFull)
	}
}

// ApplyFilters copies the configured search query and sort key into the engine.
func ApplyFilters(e *Engine, cfg *contract.Config) error {
	e.SetSearchQuery(cfg.SearchQuery)
	return e.SetSortKey(cfg.SortKey)
}

// GetListResults builds the list view of the engine, capped at cfg.ResultLimit entries.
// Charts are only built for card previews.
func GetListResults(e *Engine, cfg *contract.Config) schema.ListResult {
	view := e.View()
	state := e.State()

	visible := view.VisibleEntries
	if cfg.ResultLimit > 0 && len(visible) > cfg.ResultLimit {
		visible = visible[:cfg.ResultLimit]
	}

	result := schema.ListResult{
		SearchQuery: state.SearchQuery,
		SortKey:     state.SortKey,
		CatalogSize: len(e.catalog),
		Selection:   state.Selection,
		Entries:     schema.EnrichLanguages(visible, e.IsSelected),
	}
	if cfg.Preview {
		result.Charts = make([]schema.MetricChart, len(visible))
		for i, l := range visible {
			result.Charts[i] = BuildMetricChart(l, e.Scale())
		}
	}
	return result
}

// GetDetailResult builds the detail card of one language.
func GetDetailResult(e *Engine, id string) (schema.DetailResult, error) {
	l, err := e.Lookup(id)
	if err != nil {
		return schema.DetailResult{}, err
	}
	return schema.DetailResult{
		Language: l,
		Average:  schema.AverageScore(l),
		Chart:    BuildMetricChart(l, e.Scale()),
	}, nil
}

// GetComparisonResult builds the comparison panel of the current selection.
func GetComparisonResult(e *Engine) schema.ComparisonResult {
	view := e.View()
	return schema.ComparisonResult{
		Selection: e.State().Selection,
		Languages: view.SelectedEntries,
		Series:    view.ComparisonSeries,
		Chart:     BuildComparisonChart(view, e.Scale()),
	}
}

// GetSubjectsResult lists every subject with the scale charts are drawn on.
func GetSubjectsResult(scale schema.Scale) schema.SubjectsResult {
	subjects := make([]schema.SubjectInfo, len(schema.Subjects))
	copy(subjects, schema.Subjects)
	return schema.SubjectsResult{Subjects: subjects, Scale: scale}
}

// ImportCatalog loads entries from source and stores them in the SQL catalog store.
// It returns the number of imported languages.
func ImportCatalog(ctx context.Context, source contract.CatalogSource, store contract.CatalogStore) (int, error) {
	entries, err := source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", source.Describe(), err)
	}
	if err := store.Import(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to import into %s: %w", store.Describe(), err)
	}
	logging.FromContext(ctx).Info("catalog imported",
		zap.String("from", source.Describe()),
		zap.String("to", store.Describe()),
		zap.Int("entries", len(entries)),
	)
	return len(entries), nil
}
