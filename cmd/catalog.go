package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/catalog"
	"github.com/langradar/langradar/internal/catalogdb"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogSetup loads minimal configuration needed for catalog store operations.
// Non-database backends fall back to the default SQLite store.
func catalogSetup(_ *cobra.Command, _ []string) error {
	if err := readConfigFile(); err != nil {
		return err
	}

	backend := schema.CatalogBackend(strings.ToLower(strings.TrimSpace(viper.GetString("catalog-backend"))))
	connStr := strings.TrimSpace(viper.GetString("catalog-source"))
	if !backend.IsDatabase() {
		backend = schema.SQLiteBackend
		connStr = ""
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetCatalogDBFilePath()
	}
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CatalogBackend = backend
	cfg.CatalogSource = connStr
	return setupLogger(viper.GetString("log-level"))
}

// catalogCmd focused on the SQL catalog store.
//
// Note: Catalog subcommands use minimal initialization (catalogSetup) instead of
// the full sharedSetup, since they never render browse output.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQL catalog store",
	Long: `Manage a SQL copy of the language catalog.

A SQL store is an alternative catalog source: import the embedded catalog (or a
YAML file), edit it with SQL, and browse it with --catalog-backend.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  import  - Replace the stored catalog
  status  - Show catalog store statistics
  migrate - Run database schema migrations

Examples:
  # Import the embedded catalog into the default SQLite store
  langradar catalog import

  # Browse the stored catalog
  langradar list --catalog-backend sqlite`,
}

// catalogImportCmd replaces the stored catalog.
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the stored catalog with the embedded one or a YAML file",
	Long: `Replace every language in the catalog store.

The import runs in one transaction, so a failed import leaves the previous
catalog in place.

Examples:
  langradar catalog import
  langradar catalog import --from my-languages.yaml --catalog-backend postgresql \
    --catalog-source "host=localhost user=radar password=radar dbname=radar"`,
	PreRunE: catalogSetup,
	Run: func(_ *cobra.Command, _ []string) {
		var source contract.CatalogSource = catalog.NewCatalog()
		if from := viper.GetString("from"); from != "" {
			source = catalog.FileSource{Path: from}
		}

		store, err := catalogdb.NewStore(cfg.CatalogBackend, cfg.CatalogSource)
		if err != nil {
			contract.LogFatal("Failed to open catalog store", err)
		}
		defer func() { _ = store.Close() }()

		n, err := core.ImportCatalog(rootCtx, source, store)
		if err != nil {
			contract.LogFatal("Failed to import catalog", err)
		}
		fmt.Printf("Imported %d languages into %s\n", n, store.Describe())
	},
}

// catalogStatusCmd shows catalog store status.
var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display catalog store statistics and connection details",
	Long: `Show the backend, the number of stored languages, the last import time
and the size of every catalog table.`,
	PreRunE: catalogSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := catalogdb.NewStore(cfg.CatalogBackend, cfg.CatalogSource)
		if err != nil {
			contract.LogFatal("Failed to open catalog store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get catalog status", err)
		}
		catalogdb.PrintCatalogStatus(os.Stdout, status)
	},
}

// catalogMigrateCmd runs database migrations for the catalog store.
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the catalog store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  langradar catalog migrate

  # Migrate to specific version
  langradar catalog migrate --target-version 2

  # Rollback to initial state
  langradar catalog migrate --target-version 0`,
	PreRunE: catalogSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		result, err := catalogdb.Migrate(cfg.CatalogBackend, cfg.CatalogSource, targetVersion)
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		catalogdb.PrintMigrationResult(os.Stdout, result)
	},
}
