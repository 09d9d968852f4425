package cmd

import (
	"github.com/langradar/langradar/core"
	"github.com/spf13/cobra"
)

// compareCmd focused on side-by-side comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare <id>...",
	Short: "Compare up to three languages side by side.",
	Long: `Compare up to three languages subject by subject.

The ids are selected in the order given. Unknown ids are ignored and ids past
the third are rejected with a warning; neither stops the comparison.

The panel shows:
- A table with one row per subject and one column per language
- An overlaid radar chart on the shared 0-10 scale
- The full card of every language in selection order

Examples:
  langradar compare c python
  langradar compare rust go --output svg --output-file rust-vs-go.svg
  langradar compare java kotlin scala --output csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		runExecutor("Cannot compare languages", core.ExecuteCompare, args)
	},
}
