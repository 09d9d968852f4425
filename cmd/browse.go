package cmd

import (
	"os"

	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/internal/session"
	"github.com/spf13/cobra"
)

// browseCmd runs the interactive session.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and compare languages interactively.",
	Long: `Start an interactive session reading commands from stdin.

The session keeps a search query, a sort key and a selection of up to three
languages. --search and --sort set the initial filters.

Commands:
  search <text>, sort <key>, toggle <id>, show <id>, clear, reset,
  view, compare, state, help, quit`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		e, err := core.LoadEngine(rootCtx, catalogSource)
		if err != nil {
			contract.LogFatal("Cannot start session", err)
		}
		if err := core.ApplyFilters(e, cfg); err != nil {
			contract.LogFatal("Cannot start session", err)
		}
		s := session.New(e, cfg, os.Stdout, logging.FromContext(rootCtx))
		if err := s.Run(rootCtx, os.Stdin); err != nil {
			contract.LogFatal("Session failed", err)
		}
	},
}
