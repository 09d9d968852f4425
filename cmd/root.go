package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations. sharedSetup stores the logger in it.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// catalogSource is the catalog opened by sharedSetup.
var catalogSource contract.CatalogSource

// closeCatalog releases the resources of catalogSource.
var closeCatalog = func() error { return nil }

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "langradar",
	Short: "Browse, rank and compare programming languages.",
	Long: `LangRadar browses a catalog of programming languages scored on six subjects
(Performans, Öğrenme, Ekosistem, Esneklik, Geliştirme Hızı, Kariyer) and compares
up to three of them side by side with radar charts.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".langradar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("LANGRADAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("sort", schema.NoSort)
	viper.SetDefault("catalog-backend", schema.EmbeddedBackend)
	viper.SetDefault("catalog-source", "")
	viper.SetDefault("log-level", logging.DefaultLevel)
	viper.SetDefault("color", "yes")
}

// readConfigFile merges the config file into Viper when one exists.
func readConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// setupLogger builds the zap logger for level and stores it in rootCtx.
func setupLogger(level string) error {
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	rootCtx = logging.WithLogger(rootCtx, logger)
	return nil
}

// sharedSetup unmarshals config, runs validation and opens the catalog.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := readConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if err := setupLogger(cfg.LogLevel); err != nil {
		return err
	}

	// 4. Open the configured catalog.
	source, closeFn, err := core.OpenCatalogSource(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	catalogSource = source
	closeCatalog = closeFn
	logging.FromContext(rootCtx).Debug("configuration loaded",
		zap.String("catalog", source.Describe()),
		zap.String("output", string(cfg.Output)),
	)
	return nil
}

// runExecutor runs an executor against the opened catalog and exits on failure.
// The catalog header is only printed when stdout is a terminal.
func runExecutor(msg string, executeFunc core.ExecutorFunc, args []string) {
	ctx := core.WithAdvisoryWriter(rootCtx, rootCmd.ErrOrStderr())
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx = core.WithSuppressHeader(ctx)
	}
	if err := executeFunc(ctx, cfg, catalogSource, args); err != nil {
		contract.LogFatal(msg, err)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Cleanup releases the catalog opened by the last command.
func Cleanup() error {
	return closeCatalog()
}
