// Package catalog loads the language catalog and checks it for data defects.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/langradar/langradar/schema"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogRawData []byte

// ErrInvalidCatalog is returned when catalog content cannot be used at all.
var ErrInvalidCatalog = errors.New("invalid catalog")

// catalogFile is the top-level structure of a YAML catalog.
type catalogFile struct {
	Entries []schema.Language `yaml:"entries"`
}

// Catalog provides lazy-loaded access to the embedded language catalog.
type Catalog struct {
	once    sync.Once
	entries []schema.Language
	err     error
}

// NewCatalog creates a Catalog that parses the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Entries returns a copy of all catalog entries in declaration order.
func (c *Catalog) Entries() ([]schema.Language, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	return schema.CloneLanguages(c.entries), nil
}

// Load implements contract.CatalogSource.
func (c *Catalog) Load(_ context.Context) ([]schema.Language, error) {
	return c.Entries()
}

// Describe implements contract.CatalogSource.
func (c *Catalog) Describe() string {
	return "embedded catalog"
}

// load parses the embedded YAML catalog data.
func (c *Catalog) load() {
	c.entries, c.err = Parse(catalogRawData)
}

// FileSource loads a catalog from a YAML file on disk.
type FileSource struct {
	Path string
}

// Load implements contract.CatalogSource.
func (s FileSource) Load(_ context.Context) ([]schema.Language, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.Path, err)
	}
	return Parse(data)
}

// Describe implements contract.CatalogSource.
func (s FileSource) Describe() string {
	return "catalog file " + s.Path
}

// StaticSource serves a fixed set of entries. It is mostly useful in tests.
type StaticSource []schema.Language

// Load implements contract.CatalogSource.
func (s StaticSource) Load(_ context.Context) ([]schema.Language, error) {
	return schema.CloneLanguages(s), nil
}

// Describe implements contract.CatalogSource.
func (s StaticSource) Describe() string {
	return fmt.Sprintf("static catalog (%d entries)", len(s))
}

// Parse decodes YAML catalog data and validates it.
func Parse(data []byte) ([]schema.Language, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	if err := Validate(f.Entries); err != nil {
		return nil, err
	}
	return f.Entries, nil
}

// Marshal encodes entries in the YAML catalog format.
func Marshal(entries []schema.Language) ([]byte, error) {
	data, err := yaml.Marshal(catalogFile{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("catalog: encode yaml: %w", err)
	}
	return data, nil
}
