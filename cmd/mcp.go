package cmd

import (
	"github.com/langradar/langradar/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the LangRadar MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents list, rank and compare
languages via standard tools. The session_* tools share one browsing session.`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, catalogSource)
	},
}
