package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/langradar/langradar/internal/catalog"
	"github.com/langradar/langradar/schema"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors reported by the Engine.
var (
	// ErrSelectionFull is the capacity advisory raised when a fourth language is added.
	ErrSelectionFull = fmt.Errorf("at most %d languages can be compared at once", schema.MaxSelection)

	// ErrInvalidSortKey is returned for sort keys that are neither none nor a subject.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrUnknownLanguage is returned by lookups for ids missing from the catalog.
	ErrUnknownLanguage = errors.New("unknown language")
)

// Engine owns the interactive state of one browsing session and derives the
// visible, selected and comparison views from it.
//
// Every mutating call recomputes all derived views before it returns.
// An Engine is not safe for concurrent use.
type Engine struct {
	catalog []schema.Language
	scores  []schema.ScoreIndex
	lowered []string // lowercased names, aligned with catalog
	byID    map[string]int
	scale   schema.Scale
	logger  *zap.Logger

	state        schema.State
	loweredQuery string
	view         schema.View
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used to report data defects and rejected actions.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithScale replaces the default metric scale.
func WithScale(scale schema.Scale) EngineOption {
	return func(e *Engine) {
		e.scale = scale
	}
}

// NewEngine creates an Engine over a copy of the given catalog. The catalog
// keeps its order as the natural order. Data defects are logged, never fatal.
func NewEngine(entries []schema.Language, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: schema.CloneLanguages(entries),
		scale:   schema.DefaultScale(),
		logger:  zap.NewNop(),
		state:   schema.State{SortKey: schema.NoSort},
	}
	for _, opt := range opts {
		opt(e)
	}

	lower := cases.Lower(language.Und)
	e.scores = make([]schema.ScoreIndex, len(e.catalog))
	e.lowered = make([]string, len(e.catalog))
	e.byID = make(map[string]int, len(e.catalog))
	for i, l := range e.catalog {
		e.scores[i] = l.Index()
		e.lowered[i] = lower.String(l.Name)
		if _, dup := e.byID[l.ID]; !dup {
			e.byID[l.ID] = i
		}
	}

	for _, d := range catalog.Inspect(e.catalog, e.scale) {
		e.logger.Warn("catalog data defect",
			zap.String("id", d.ID),
			zap.String("kind", string(d.Kind)),
			zap.String("detail", d.Detail),
		)
	}
	zeroNaNScores(e.catalog)

	e.recompute()
	return e
}

// SetSearchQuery replaces the search query verbatim.
func (e *Engine) SetSearchQuery(text string) {
	e.state.SearchQuery = text
	e.loweredQuery = cases.Lower(language.Und).String(text)
	e.recompute()
}

// SetSortKey replaces the sort key. Invalid keys leave the state unchanged.
func (e *Engine) SetSortKey(key schema.SortKey) error {
	if key == "" {
		key = schema.NoSort
	}
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
	e.state.SortKey = key
	e.recompute()
	return nil
}

// ToggleSelection adds or removes a language from the selection.
//
// Unknown ids are ignored. Adding to a full selection is rejected with
// ErrSelectionFull and leaves the selection unchanged.
func (e *Engine) ToggleSelection(id string) (schema.ToggleOutcome, error) {
	if _, ok := e.byID[id]; !ok {
		e.logger.Debug("toggle ignored for unknown language", zap.String("id", id))
		return schema.ToggleIgnored, nil
	}

	if pos := slices.Index(e.state.Selection, id); pos >= 0 {
		e.state.Selection = slices.Delete(slices.Clone(e.state.Selection), pos, pos+1)
		e.recompute()
		return schema.ToggleRemoved, nil
	}

	if len(e.state.Selection) >= schema.MaxSelection {
		e.logger.Debug("selection full", zap.String("id", id), zap.Strings("selection", e.state.Selection))
		return schema.ToggleRejected, ErrSelectionFull
	}

	e.state.Selection = append(slices.Clone(e.state.Selection), id)
	e.recompute()
	return schema.ToggleAdded, nil
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() {
	e.state.Selection = nil
	e.recompute()
}

// ResetFilters clears the search query and the sort key. The selection is kept.
func (e *Engine) ResetFilters() {
	e.state.SearchQuery = ""
	e.loweredQuery = ""
	e.state.SortKey = schema.NoSort
	e.recompute()
}

// IsSelected reports whether the id is part of the selection.
func (e *Engine) IsSelected(id string) bool {
	return slices.Contains(e.state.Selection, id)
}

// State returns a copy of the interactive state.
func (e *Engine) State() schema.State {
	st := e.state
	st.Selection = slices.Clone(e.state.Selection)
	return st
}

// View returns a copy of the latest derived views.
func (e *Engine) View() schema.View {
	rows := make([]schema.ComparisonRow, len(e.view.ComparisonSeries))
	for i, r := range e.view.ComparisonSeries {
		rows[i] = schema.ComparisonRow{Subject: r.Subject, Values: slices.Clone(r.Values)}
	}
	return schema.View{
		VisibleEntries:   schema.CloneLanguages(e.view.VisibleEntries),
		SelectedEntries:  schema.CloneLanguages(e.view.SelectedEntries),
		ComparisonSeries: rows,
	}
}

// Catalog returns a copy of the catalog in natural order.
func (e *Engine) Catalog() []schema.Language {
	return schema.CloneLanguages(e.catalog)
}

// Scale returns the metric scale shared by the chart renderers.
func (e *Engine) Scale() schema.Scale {
	return e.scale
}

// Lookup returns the catalog entry with the given id.
func (e *Engine) Lookup(id string) (schema.Language, error) {
	i, ok := e.byID[id]
	if !ok {
		return schema.Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	return e.catalog[i].Clone(), nil
}

// recompute derives every view from the catalog and the current state.
func (e *Engine) recompute() {
	visible := e.visibleIndexes()
	e.view.VisibleEntries = make([]schema.Language, len(visible))
	for i, idx := range visible {
		e.view.VisibleEntries[i] = e.catalog[idx]
	}

	selected := make([]schema.Language, 0, len(e.state.Selection))
	for _, id := range e.state.Selection {
		if i, ok := e.byID[id]; ok {
			selected = append(selected, e.catalog[i])
		}
	}
	e.view.SelectedEntries = selected
	e.view.ComparisonSeries = buildComparisonSeries(selected, e.scale.Axes)
}

// visibleIndexes returns catalog indexes matching the query, ranked by the sort key.
func (e *Engine) visibleIndexes() []int {
	idx := make([]int, 0, len(e.catalog))
	for i, name := range e.lowered {
		if strings.Contains(name, e.loweredQuery) {
			idx = append(idx, i)
		}
	}

	subject, ok := e.state.SortKey.Subject()
	if !ok {
		return idx
	}
	higherFirst := true
	if info, found := schema.LookupSubject(subject); found {
		higherFirst = info.HigherIsBetter
	}
	sort.SliceStable(idx, func(a, b int) bool {
		// Missing subjects read as 0 from the index, the minimum score.
		va, vb := e.scores[idx[a]][subject], e.scores[idx[b]][subject]
		if higherFirst {
			return va > vb
		}
		return va < vb
	})
	return idx
}

// zeroNaNScores replaces NaN metric values with 0 so every output can encode them.
func zeroNaNScores(langs []schema.Language) {
	for i := range langs {
		for j := range langs[i].Metrics {
			if math.IsNaN(langs[i].Metrics[j].Value) {
				langs[i].Metrics[j].Value = 0
			}
		}
	}
}
