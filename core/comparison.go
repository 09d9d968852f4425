package core

import (
	"github.com/langradar/langradar/schema"
)

// buildComparisonSeries builds one row per axis with the score of every selected
// language, looked up by subject label. Missing subjects score 0.
func buildComparisonSeries(selected []schema.Language, axes []schema.Subject) []schema.ComparisonRow {
	if len(selected) == 0 {
		return []schema.ComparisonRow{}
	}

	indexes := make([]schema.ScoreIndex, len(selected))
	for i, l := range selected {
		indexes[i] = l.Index()
	}

	rows := make([]schema.ComparisonRow, 0, len(axes))
	for _, subject := range axes {
		row := schema.ComparisonRow{
			Subject: subject,
			Values:  make([]schema.SeriesValue, len(selected)),
		}
		for i, l := range selected {
			row.Values[i] = schema.SeriesValue{Name: l.Name, Value: indexes[i][subject]}
		}
		rows = append(rows, row)
	}
	return rows
}

// SelectAll adds every id to the engine selection in order. Ids already selected
// are skipped so repeated ids never toggle a language back out.
// It returns the ids that were unknown and the ids rejected because the selection was full.
func SelectAll(e *Engine, ids []string) (unknown, rejected []string) {
	for _, id := range ids {
		if e.IsSelected(id) {
			continue
		}
		outcome, _ := e.ToggleSelection(id)
		switch outcome {
		case schema.ToggleIgnored:
			unknown = append(unknown, id)
		case schema.ToggleRejected:
			rejected = append(rejected, id)
		}
	}
	return unknown, rejected
}
