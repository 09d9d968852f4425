package cmd

import (
	"github.com/langradar/langradar/core"
	"github.com/spf13/cobra"
)

// listCmd prints the visible languages.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List languages filtered by name and ranked by a subject.",
	Long: `List the catalog with an optional name search and subject ranking.

The search is a case-insensitive substring match on language names. Sorting is
stable and ranks the highest scores first; languages that miss a subject rank as 0.

Examples:
  # Natural catalog order
  langradar list

  # Script languages ranked by ease of learning
  langradar list --search script --sort learning

  # Cards with two pros and cons per language
  langradar list --sort career --limit 5 --preview`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		runExecutor("Cannot list languages", core.ExecuteList, args)
	},
}

// showCmd prints one language in full.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full card and radar chart of one language.",
	Long: `Show the philosophy, every pro and con, the six scores and the radar chart
of one language. Use --output svg to get the chart as an SVG document.

Examples:
  langradar show rust
  langradar show python --output svg --output-file python.svg`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		runExecutor("Cannot show language", core.ExecuteShow, args)
	},
}

// subjectsCmd prints the sort keys and the metric scale.
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the sort keys, their aliases and the metric scale.",
	Long: `List the natural order and the six subjects that languages can be ranked by.
Every subject ranks the highest score first on a shared 0-10 scale.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		runExecutor("Cannot list subjects", core.ExecuteSubjects, args)
	},
}
