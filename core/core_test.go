package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/langradar/langradar/internal/catalog"
	"github.com/langradar/langradar/internal/catalogdb"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// failingSource is a catalog source that cannot be loaded.
type failingSource struct{}

func (failingSource) Load(context.Context) ([]schema.Language, error) { return nil, assert.AnError }
func (failingSource) Describe() string                                { return "broken source" }

func fileConfig(t *testing.T, mode schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		SortKey:        schema.NoSort,
		ResultLimit:    contract.DefaultResultLimit,
		Precision:      contract.DefaultPrecision,
		Output:         mode,
		OutputFile:     filepath.Join(t.TempDir(), "out"),
		CatalogBackend: schema.EmbeddedBackend,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) []byte {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return data
}

func TestOpenCatalogSource(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		src, closeFn, err := OpenCatalogSource(&contract.Config{CatalogBackend: schema.EmbeddedBackend})
		require.NoError(t, err)
		assert.IsType(t, &catalog.Catalog{}, src)
		assert.NoError(t, closeFn())
	})

	t.Run("file", func(t *testing.T) {
		src, closeFn, err := OpenCatalogSource(&contract.Config{CatalogBackend: schema.FileBackend, CatalogSource: "langs.yaml"})
		require.NoError(t, err)
		assert.Equal(t, catalog.FileSource{Path: "langs.yaml"}, src)
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.db")
		src, closeFn, err := OpenCatalogSource(&contract.Config{CatalogBackend: schema.SQLiteBackend, CatalogSource: path})
		require.NoError(t, err)
		assert.IsType(t, &catalogdb.Store{}, src)
		assert.NoError(t, closeFn())
	})
}

func TestLoadEngine(t *testing.T) {
	e, err := LoadEngine(context.Background(), catalog.StaticSource{lang("a", "A", 1, 2, 3, 4, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(e.View().VisibleEntries))

	_, err = LoadEngine(context.Background(), failingSource{})
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "broken source")
}

func TestGetListResults(t *testing.T) {
	e := NewEngine(embeddedEntries(t))
	require.NoError(t, e.SetSortKey(schema.SortKey(schema.Performance)))
	_, err := e.ToggleSelection("vhdl")
	require.NoError(t, err)

	cfg := &contract.Config{ResultLimit: 3}
	result := GetListResults(e, cfg)

	assert.Equal(t, 59, result.CatalogSize)
	assert.Equal(t, schema.SortKey(schema.Performance), result.SortKey)
	assert.Equal(t, []string{"vhdl"}, result.Selection)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, "assembly", result.Entries[0].ID)
	assert.Equal(t, 1, result.Entries[0].Rank)
	assert.False(t, result.Entries[0].Selected)
	assert.True(t, result.Entries[1].Selected)
	assert.Nil(t, result.Charts, "charts are only built for previews")

	cfg.Preview = true
	result = GetListResults(e, cfg)
	require.Len(t, result.Charts, 3)
	assert.Equal(t, "Assembly", result.Charts[0].Title)
	assert.Len(t, result.Charts[0].Points, 6)
}

func TestGetDetailResult(t *testing.T) {
	e := NewEngine(embeddedEntries(t))

	result, err := GetDetailResult(e, "c")
	require.NoError(t, err)
	assert.Equal(t, "C", result.Name)
	assert.InDelta(t, 36.5/6, result.Average, 1e-9)
	assert.Equal(t, "#A8B9CC", result.Chart.Color)
	assert.Equal(t, 9.5, result.Chart.Points[0].Value)

	_, err = GetDetailResult(e, "nope")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestGetComparisonResult(t *testing.T) {
	e := NewEngine(embeddedEntries(t))
	empty := GetComparisonResult(e)
	assert.Empty(t, empty.Languages)
	assert.Empty(t, empty.Series)

	SelectAll(e, []string{"python", "c"})
	result := GetComparisonResult(e)
	assert.Equal(t, []string{"python", "c"}, result.Selection)
	assert.Equal(t, []string{"Python", "C"}, names(result.Languages))
	require.Len(t, result.Series, 6)
	assert.Equal(t, []schema.SeriesValue{{Name: "Python", Value: 3}, {Name: "C", Value: 9.5}}, result.Series[0].Values)
	assert.Len(t, result.Chart.Series, 2)
}

func TestGetSubjectsResult(t *testing.T) {
	result := GetSubjectsResult(schema.DefaultScale())
	require.Len(t, result.Subjects, 6)
	result.Subjects[0].Alias = "changed"
	assert.Equal(t, "performance", schema.Subjects[0].Alias, "result does not alias the package table")
}

func TestExecuteList(t *testing.T) {
	cfg := fileConfig(t, schema.JSONOut)
	cfg.SearchQuery = "c"
	cfg.SortKey = schema.SortKey(schema.Performance)
	cfg.ResultLimit = 2

	require.NoError(t, ExecuteList(context.Background(), cfg, catalog.NewCatalog(), nil))

	var decoded struct {
		SearchQuery string `json:"search_query"`
		Entries     []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(readOutput(t, cfg), &decoded))
	assert.Equal(t, "c", decoded.SearchQuery)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "c", decoded.Entries[0].ID)
	assert.Equal(t, "cpp", decoded.Entries[1].ID)
}

func TestExecuteListInvalidSortKey(t *testing.T) {
	cfg := fileConfig(t, schema.JSONOut)
	cfg.SortKey = "Hype"
	err := ExecuteList(context.Background(), cfg, catalog.NewCatalog(), nil)
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestExecuteListEmptyResult(t *testing.T) {
	cfg := fileConfig(t, schema.TextOut)
	cfg.SearchQuery = "xyz-nonexistent"

	require.NoError(t, ExecuteList(context.Background(), cfg, catalog.NewCatalog(), nil))
	output := string(readOutput(t, cfg))
	assert.Contains(t, output, `No languages match "xyz-nonexistent".`)
	assert.Contains(t, output, "without --search and --sort")
}

func TestExecuteShow(t *testing.T) {
	ctx := context.Background()

	err := ExecuteShow(ctx, fileConfig(t, schema.JSONOut), catalog.NewCatalog(), nil)
	assert.ErrorIs(t, err, errMissingID)

	err = ExecuteShow(ctx, fileConfig(t, schema.JSONOut), catalog.NewCatalog(), []string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	cfg := fileConfig(t, schema.JSONOut)
	require.NoError(t, ExecuteShow(ctx, cfg, catalog.NewCatalog(), []string{"rust"}))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(readOutput(t, cfg), &decoded))
	assert.Equal(t, "rust", decoded["id"])
	assert.Equal(t, "#dea584", decoded["color"])
}

func TestExecuteCompare(t *testing.T) {
	cfg := fileConfig(t, schema.CSVOut)
	args := []string{"c", "python", "nope", "go", "rust"}

	var advisories bytes.Buffer
	ctx := WithAdvisoryWriter(context.Background(), &advisories)
	require.NoError(t, ExecuteCompare(ctx, cfg, catalog.NewCatalog(), args))
	assert.Equal(t,
		"Warn ignoring unknown language: nope\nWarn cannot select rust: at most 3 languages can be compared at once\n",
		advisories.String())

	records, err := csv.NewReader(bytes.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"subject", "C", "Python", "Go (Golang)"}, records[0])
	assert.Equal(t, "Performans", records[1][0])
}

func TestExecuteCompareSVG(t *testing.T) {
	cfg := fileConfig(t, schema.SVGOut)
	require.NoError(t, ExecuteCompare(context.Background(), cfg, catalog.NewCatalog(), []string{"rust", "go"}))

	output := string(readOutput(t, cfg))
	assert.Equal(t, 2, strings.Count(output, `class="series"`))
	assert.Contains(t, output, "#dea584")
	assert.Contains(t, output, "#00ADD8")
}

func TestExecuteSubjects(t *testing.T) {
	cfg := fileConfig(t, schema.CSVOut)
	require.NoError(t, ExecuteSubjects(context.Background(), cfg, nil, nil))

	records, err := csv.NewReader(bytes.NewReader(readOutput(t, cfg))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)
}

func TestWarnSelection(t *testing.T) {
	var buf bytes.Buffer
	warnSelection(&buf, []string{"nope"}, []string{"java"})
	assert.Equal(t,
		"Warn ignoring unknown language: nope\nWarn cannot select java: at most 3 languages can be compared at once\n",
		buf.String())
}

func TestImportCatalog(t *testing.T) {
	ctx := context.Background()
	store, err := catalogdb.NewStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	n, err := ImportCatalog(ctx, catalog.NewCatalog(), store)
	require.NoError(t, err)
	assert.Equal(t, 59, n)

	e, err := LoadEngine(ctx, store)
	require.NoError(t, err)
	require.NoError(t, e.SetSortKey(schema.SortKey(schema.Performance)))
	assert.Equal(t, []string{"assembly", "vhdl", "verilog"}, ids(e.View().VisibleEntries[:3]))

	_, err = ImportCatalog(ctx, failingSource{}, store)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestImportCatalogStoreFailure(t *testing.T) {
	ctx := context.Background()
	entries := []schema.Language{lang("a", "A", 1, 2, 3, 4, 5, 6)}

	store := &catalogdb.MockStore{}
	store.On("Import", ctx, mock.Anything).Return(assert.AnError)
	store.On("Describe").Return("mock store")

	n, err := ImportCatalog(ctx, catalog.StaticSource(entries), store)
	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "mock store")
	store.AssertExpectations(t)
}

func TestImportCatalogPassesEntries(t *testing.T) {
	ctx := context.Background()
	entries := []schema.Language{lang("a", "A", 1, 2, 3, 4, 5, 6), lang("b", "B", 6, 5, 4, 3, 2, 1)}

	store := &catalogdb.MockStore{}
	store.On("Import", ctx, mock.MatchedBy(func(got []schema.Language) bool {
		return len(got) == 2 && got[0].ID == "a" && got[1].ID == "b"
	})).Return(nil)
	store.On("Describe").Return("mock store")

	n, err := ImportCatalog(ctx, catalog.StaticSource(entries), store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	store.AssertExpectations(t)
}
