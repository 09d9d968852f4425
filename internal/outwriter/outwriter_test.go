package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(mode schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:      mode,
		Precision:   1,
		Width:       200,
		ResultLimit: contract.DefaultResultLimit,
		SortKey:     schema.NoSort,
	}
}

func lang(id, name, color string, scores ...float64) schema.Language {
	l := schema.Language{
		ID:         id,
		Name:       name,
		Color:      color,
		Philosophy: name + " philosophy",
		Pros:       []string{name + " pro 1", name + " pro 2", name + " pro 3"},
		Cons:       []string{name + " con 1", name + " con 2", name + " con 3"},
	}
	for i, s := range schema.AllSubjects() {
		l.Metrics = append(l.Metrics, schema.MetricPoint{Subject: s, Value: scores[i], MaxValue: 10})
	}
	return l
}

func sampleC() schema.Language {
	return lang("c", "C", "#A8B9CC", 9.5, 5, 7, 4, 4, 7)
}

func samplePython() schema.Language {
	return lang("python", "Python", "#3776AB", 3, 10, 10, 9, 10, 9)
}

func metricChart(l schema.Language) schema.MetricChart {
	scale := schema.DefaultScale()
	points := make([]schema.MetricPoint, len(scale.Axes))
	idx := l.Index()
	for i, s := range scale.Axes {
		points[i] = schema.MetricPoint{Subject: s, Value: idx[s], MaxValue: scale.Max}
	}
	return schema.MetricChart{Title: l.Name, Color: l.Color, Scale: scale, Points: points}
}

func TestOutWriterWritesToFile(t *testing.T) {
	tests := []struct {
		name     string
		mode     schema.OutputMode
		contains string
	}{
		{name: "text", mode: schema.TextOut, contains: "Python"},
		{name: "csv", mode: schema.CSVOut, contains: "rank,id,name"},
		{name: "json", mode: schema.JSONOut, contains: `"catalog_size": 2`},
	}

	result := schema.ListResult{
		SortKey:     schema.NoSort,
		CatalogSize: 2,
		Entries:     schema.EnrichLanguages([]schema.Language{sampleC(), samplePython()}, nil),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.mode)
			cfg.OutputFile = filepath.Join(t.TempDir(), "out")

			require.NoError(t, NewOutWriter().WriteLanguages(result, cfg))

			content, err := os.ReadFile(cfg.OutputFile)
			require.NoError(t, err)
			assert.Contains(t, string(content), tt.contains)
		})
	}
}

func TestOutWriterParquetUsesOutputFile(t *testing.T) {
	cfg := testConfig(schema.ParquetOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "comparison.parquet")

	result := schema.ComparisonResult{
		Selection: []string{"c"},
		Languages: []schema.Language{sampleC()},
		Series: []schema.ComparisonRow{
			{Subject: schema.Performance, Values: []schema.SeriesValue{{Name: "C", Value: 9.5}}},
		},
	}
	require.NoError(t, NewOutWriter().WriteComparison(result, cfg))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "Wrote JSON", successMessage(schema.JSONOut))
	assert.Equal(t, "Wrote CSV", successMessage(schema.CSVOut))
	assert.Equal(t, "Wrote SVG", successMessage(schema.SVGOut))
	assert.Equal(t, "Wrote Parquet", successMessage(schema.ParquetOut))
	assert.Equal(t, "Wrote table", successMessage(schema.TextOut))
}

func TestGetMaxTableTextWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{width: 80, expected: minTextWidth},
		{width: 130, expected: 35},
		{width: 300, expected: maxTextWidth},
	}
	for _, tt := range tests {
		cfg := testConfig(schema.TextOut)
		cfg.Width = tt.width
		assert.Equal(t, tt.expected, getMaxTableTextWidth(cfg), "width %d", tt.width)
	}
}
