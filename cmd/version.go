package cmd

import (
	"runtime"

	"github.com/langradar/langradar/internal/catalog"
	"github.com/spf13/cobra"
)

// versionCmd prints the build details and the size of the bundled catalog.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of langradar.",
	Long: `Display the release, build details and the bundled catalog.

The catalog line counts the languages compiled into the binary, which is the
data every command uses unless --catalog-backend points elsewhere.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("langradar CLI\n")
		cmd.Printf("  Version: %s (commit %s, built %s)\n", version, commit, date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		if entries, err := catalog.NewCatalog().Entries(); err != nil {
			cmd.Printf("  Catalog: unavailable (%v)\n", err)
		} else {
			cmd.Printf("  Catalog: %d languages embedded\n", len(entries))
		}
	},
}
