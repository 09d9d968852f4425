package contract

import (
	"fmt"
	"strings"

	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 100
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	MaxPrecision       = 2
)

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	SearchQuery string
	SortKey     schema.SortKey
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Detail      bool
	Preview     bool
	Width       int // Terminal width override (0 = auto-detect)

	CatalogBackend schema.CatalogBackend
	CatalogSource  string // File path or DSN; please use env var for DSNs as this is plaintext

	LogLevel  string
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile     string `mapstructure:"output-file"`
	Output         string `mapstructure:"output"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CatalogBackend string `mapstructure:"catalog-backend"`
	CatalogSource  string `mapstructure:"catalog-source"`
	LogLevel       string `mapstructure:"log-level"`

	// --- Fields from listCmd.Flags() ---
	Search  string `mapstructure:"search"`
	Sort    string `mapstructure:"sort"`
	Limit   int    `mapstructure:"limit"`
	Detail  bool   `mapstructure:"detail"`
	Preview bool   `mapstructure:"preview"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBrowseInputs(cfg, input); err != nil {
		return err
	}
	return validateCatalogConfig(cfg, input)
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, svg", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	if _, err := logging.ParseLevel(input.LogLevel); err != nil {
		return err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = logging.DefaultLevel
	}
	return nil
}

// validateBrowseInputs processes the search, sort and limit fields.
func validateBrowseInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SearchQuery = input.Search
	cfg.Detail = input.Detail
	cfg.Preview = input.Preview

	key, ok := schema.ParseSortKey(input.Sort)
	if !ok {
		return fmt.Errorf("invalid sort key '%s'. must be none or one of: %s", input.Sort, strings.Join(sortKeyNames(), ", "))
	}
	cfg.SortKey = key

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit
	return nil
}

// validateCatalogConfig validates the catalog backend and its source.
func validateCatalogConfig(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.CatalogBackend))
	if backend == "" {
		backend = string(schema.EmbeddedBackend)
	}
	cfg.CatalogBackend = schema.CatalogBackend(backend)
	if _, ok := schema.ValidCatalogBackends[cfg.CatalogBackend]; !ok {
		return fmt.Errorf("invalid catalog backend '%s'. must be embedded, file, sqlite, mysql, postgresql", input.CatalogBackend)
	}

	cfg.CatalogSource = strings.TrimSpace(input.CatalogSource)
	switch cfg.CatalogBackend {
	case schema.EmbeddedBackend:
		cfg.CatalogSource = ""
	case schema.FileBackend:
		if cfg.CatalogSource == "" {
			return fmt.Errorf("catalog-source is required when using %s backend", cfg.CatalogBackend)
		}
	case schema.SQLiteBackend:
		if cfg.CatalogSource == "" {
			cfg.CatalogSource = GetCatalogDBFilePath()
		}
	}
	return ValidateDatabaseConnectionString(cfg.CatalogBackend, cfg.CatalogSource)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.CatalogBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-source is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-source is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// sortKeyNames lists the accepted sort key spellings for error messages.
func sortKeyNames() []string {
	names := []string{string(schema.NoSort)}
	for _, s := range schema.Subjects {
		names = append(names, s.Alias)
	}
	return names
}
