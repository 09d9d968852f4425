package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	entries, err := NewCatalog().Entries()
	require.NoError(t, err)
	require.Len(t, entries, 59)

	assert.Equal(t, "assembly", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
	assert.Equal(t, "tsql", entries[len(entries)-1].ID)

	c := entries[1]
	assert.Equal(t, "C", c.Name)
	assert.Equal(t, "#A8B9CC", c.Color)
	assert.Len(t, c.Pros, 3)
	assert.Len(t, c.Cons, 3)
	v, ok := c.Value(schema.Performance)
	require.True(t, ok)
	assert.Equal(t, 9.5, v)

	assert.Empty(t, Inspect(entries, schema.DefaultScale()), "bundled catalog has no data defects")
}

func TestEmbeddedCatalogReturnsCopies(t *testing.T) {
	cat := NewCatalog()
	first, err := cat.Entries()
	require.NoError(t, err)
	first[0].Name = "changed"
	first[0].Metrics[0].Value = -1

	second, err := cat.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Assembly", second[0].Name)
	assert.Equal(t, 10.0, second[0].Metrics[0].Value)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data, err := Marshal([]schema.Language{{
		ID:   "go",
		Name: "Go (Golang)",
		Metrics: []schema.MetricPoint{
			{Subject: schema.Performance, Value: 8, MaxValue: 10},
		},
	}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	src := FileSource{Path: path}
	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go (Golang)", entries[0].Name)
	assert.Equal(t, 8.0, entries[0].Metrics[0].Value)
	assert.Equal(t, 10.0, entries[0].Metrics[0].MaxValue)
	assert.Contains(t, src.Describe(), path)

	_, err = FileSource{Path: filepath.Join(dir, "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Run("empty catalog is valid", func(t *testing.T) {
		entries, err := Parse([]byte("entries: []\n"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("entries: [\n"))
		assert.Error(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := Parse([]byte("entries:\n  - {id: a, name: A}\n  - {id: a, name: B}\n"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Parse([]byte("entries:\n  - {id: a}\n"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Parse([]byte("entries:\n  - {name: A}\n"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{{ID: "a", Name: "A"}}
	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	entries[0].Name = "changed"
	assert.Equal(t, "A", src[0].Name)
	assert.Contains(t, src.Describe(), "1 entries")
}
