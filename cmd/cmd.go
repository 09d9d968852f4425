// Package cmd defines the command-line interface for langradar.
package cmd

import (
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the catalog subcommands to the parent catalog command
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("search", "s", "", "Only show languages whose name contains this text (case-insensitive)")
	rootCmd.PersistentFlags().String("sort", string(schema.NoSort), "Sort key: none or performance or learning or ecosystem or flexibility or devspeed or career")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Bool("detail", false, "Print the philosophy of every language in tables")
	rootCmd.PersistentFlags().Bool("preview", false, "Print list entries as cards with two pros and cons")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or svg")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels and charts in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("catalog-backend", string(schema.EmbeddedBackend), "Catalog backend: embedded or file or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("catalog-source", "", "Catalog file path or database connection string (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Diagnostic log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of catalogImportCmd to Viper
	catalogImportCmd.Flags().String("from", "", "YAML catalog file to import (defaults to the embedded catalog)")
	if err := viper.BindPFlags(catalogImportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog import flags", err)
	}

	// Bind all flags of catalogMigrateCmd to Viper
	catalogMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(catalogMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog migrate flags", err)
	}
}
