package contract

import (
	"path/filepath"
	"testing"

	"github.com/langradar/langradar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input with every field at its default.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    string(schema.TextOut),
		Precision: DefaultPrecision,
		Color:     "yes",
		Limit:     DefaultResultLimit,
		Sort:      string(schema.NoSort),
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name: "valid minimal config",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.NoSort, cfg.SortKey)
				assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
				assert.Equal(t, schema.EmbeddedBackend, cfg.CatalogBackend)
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name:   "sort by alias",
			modify: func(in *ConfigRawInput) { in.Sort = "performance" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.SortKey(schema.Performance), cfg.SortKey)
			},
		},
		{
			name:   "sort by label",
			modify: func(in *ConfigRawInput) { in.Sort = "Geliştirme Hızı" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.SortKey(schema.DevSpeed), cfg.SortKey)
			},
		},
		{
			name:        "invalid sort",
			modify:      func(in *ConfigRawInput) { in.Sort = "popularity" },
			expectError: true,
		},
		{
			name:   "search is kept verbatim",
			modify: func(in *ConfigRawInput) { in.Search = " Go " },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, " Go ", cfg.SearchQuery)
			},
		},
		{
			name:        "invalid limit (zero)",
			modify:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "invalid limit (too large)",
			modify:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "invalid precision (too high)",
			modify:      func(in *ConfigRawInput) { in.Precision = 3 },
			expectError: true,
		},
		{
			name:   "zero precision",
			modify: func(in *ConfigRawInput) { in.Precision = 0 },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Precision)
			},
		},
		{
			name:        "invalid output",
			modify:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:   "output is case-insensitive",
			modify: func(in *ConfigRawInput) { in.Output = "JSON" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.JSONOut, cfg.Output)
			},
		},
		{
			name:        "parquet without output file",
			modify:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: true,
		},
		{
			name: "parquet with output file",
			modify: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = "out.parquet"
			},
		},
		{
			name:        "invalid color",
			modify:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "negative width",
			modify:      func(in *ConfigRawInput) { in.Width = -1 },
			expectError: true,
		},
		{
			name:        "invalid log level",
			modify:      func(in *ConfigRawInput) { in.LogLevel = "chatty" },
			expectError: true,
		},
		{
			name:        "invalid backend",
			modify:      func(in *ConfigRawInput) { in.CatalogBackend = "redis" },
			expectError: true,
		},
		{
			name:        "file backend requires source",
			modify:      func(in *ConfigRawInput) { in.CatalogBackend = "file" },
			expectError: true,
		},
		{
			name: "embedded backend drops source",
			modify: func(in *ConfigRawInput) {
				in.CatalogBackend = "Embedded"
				in.CatalogSource = "ignored.yaml"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.EmbeddedBackend, cfg.CatalogBackend)
				assert.Empty(t, cfg.CatalogSource)
			},
		},
		{
			name:   "sqlite backend defaults to home database",
			modify: func(in *ConfigRawInput) { in.CatalogBackend = "sqlite" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, GetCatalogDBFilePath(), cfg.CatalogSource)
			},
		},
		{
			name: "mysql backend with valid dsn",
			modify: func(in *ConfigRawInput) {
				in.CatalogBackend = "mysql"
				in.CatalogSource = "user:pass@tcp(localhost:3306)/langradar"
			},
		},
		{
			name: "postgresql backend with invalid dsn",
			modify: func(in *ConfigRawInput) {
				in.CatalogBackend = "postgresql"
				in.CatalogSource = "postgres://localhost"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.modify != nil {
				tt.modify(input)
			}
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.CatalogBackend
		connStr string
		wantErr bool
	}{
		{"sqlite accepts any path", schema.SQLiteBackend, filepath.Join("tmp", "x.db"), false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(127.0.0.1:3306)/db", false},
		{"mysql missing tcp", schema.MySQLBackend, "root:pw@127.0.0.1/db", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=db user=u", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{SearchQuery: "go", ResultLimit: 5}
	clone := cfg.Clone()
	clone.SearchQuery = "rust"
	assert.Equal(t, "go", cfg.SearchQuery)
	assert.Equal(t, 5, clone.ResultLimit)
}
