// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"fmt"

	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/logging"
	"github.com/langradar/langradar/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// sortKeyEnum lists the accepted sort values, aliases first.
func sortKeyEnum() []string {
	keys := []string{string(schema.NoSort)}
	for _, s := range schema.Subjects {
		keys = append(keys, s.Alias)
	}
	return keys
}

// NewMCPServer initializes and configures the LangRadar MCP server without starting it.
// The session tools share one engine over entries; the other tools are stateless.
func NewMCPServer(baseCfg *contract.Config, entries []schema.Language, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := server.NewMCPServer(
		"LangRadar Catalog Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		entries: schema.CloneLanguages(entries),
		session: core.NewEngine(entries, core.WithLogger(logger)),
		logger:  logger,
	}
	sortDesc := "Sort key: none or a subject alias (performance, learning, ecosystem, flexibility, devspeed, career)."

	// --- Stateless tools ---
	s.AddTool(mcp.NewTool("list_languages",
		mcp.WithDescription("List catalog languages filtered by name and ranked by a subject."),
		mcp.WithString("search", mcp.Description("Case-insensitive substring matched against language names.")),
		mcp.WithString("sort", mcp.Description(sortDesc), mcp.Enum(sortKeyEnum()...)),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.logged("list_languages", h.handleListLanguages))

	s.AddTool(mcp.NewTool("show_language",
		mcp.WithDescription("Get the full card of one language: philosophy, pros, cons and six scores."),
		mcp.WithString("id", mcp.Description("Language id, e.g. 'rust'."), mcp.Required()),
	), h.logged("show_language", h.handleShowLanguage))

	s.AddTool(mcp.NewTool("compare_languages",
		mcp.WithDescription("Compare up to three languages subject by subject."),
		mcp.WithString("ids", mcp.Description("Comma-separated language ids in selection order, e.g. 'c,python'."), mcp.Required()),
	), h.logged("compare_languages", h.handleCompareLanguages))

	s.AddTool(mcp.NewTool("list_subjects",
		mcp.WithDescription("List the six scoring subjects, their sort aliases and the shared scale."),
	), h.logged("list_subjects", h.handleListSubjects))

	// --- Session tools ---
	s.AddTool(mcp.NewTool("session_search",
		mcp.WithDescription("Set the search query of the browsing session and return the visible languages."),
		mcp.WithString("query", mcp.Description("Case-insensitive name substring. Empty clears the search.")),
	), h.logged("session_search", h.handleSessionSearch))

	s.AddTool(mcp.NewTool("session_sort",
		mcp.WithDescription("Set the sort key of the browsing session and return the visible languages."),
		mcp.WithString("key", mcp.Description(sortDesc), mcp.Required()),
	), h.logged("session_sort", h.handleSessionSort))

	s.AddTool(mcp.NewTool("session_toggle",
		mcp.WithDescription("Add or remove a language from the session comparison (at most three)."),
		mcp.WithString("id", mcp.Description("Language id to toggle."), mcp.Required()),
	), h.logged("session_toggle", h.handleSessionToggle))

	s.AddTool(mcp.NewTool("session_clear",
		mcp.WithDescription("Empty the session comparison selection."),
	), h.logged("session_clear", h.handleSessionClear))

	s.AddTool(mcp.NewTool("session_reset",
		mcp.WithDescription("Clear the session search and sort, keeping the selection."),
	), h.logged("session_reset", h.handleSessionReset))

	s.AddTool(mcp.NewTool("session_view",
		mcp.WithDescription("Return the languages visible in the browsing session."),
	), h.logged("session_view", h.handleSessionView))

	s.AddTool(mcp.NewTool("session_compare",
		mcp.WithDescription("Return the comparison panel of the session selection."),
	), h.logged("session_compare", h.handleSessionCompare))

	s.AddTool(mcp.NewTool("session_state",
		mcp.WithDescription("Return the session search query, sort key and selection."),
	), h.logged("session_state", h.handleSessionState))

	return s
}

// StartMCPServer loads the catalog and serves the LangRadar MCP server over stdio.
func StartMCPServer(ctx context.Context, baseCfg *contract.Config, source contract.CatalogSource) error {
	entries, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", source.Describe(), err)
	}
	s := NewMCPServer(baseCfg, entries, logging.FromContext(ctx))
	return server.ServeStdio(s)
}
