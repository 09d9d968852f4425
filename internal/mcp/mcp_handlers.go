package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/outwriter"
	"github.com/langradar/langradar/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	entries []schema.Language
	logger  *zap.Logger

	mu      sync.Mutex // serializes session actions
	session *core.Engine
}

// toggleResponse is the session_toggle payload.
type toggleResponse struct {
	schema.ToggleResult
	Advisory string `json:"advisory,omitempty"`
}

func (h *toolHandler) logged(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		h.logger.Debug("mcp tool call", zap.String("tool", name), zap.Any("arguments", request.GetArguments()))
		return next(ctx, request)
	}
}

// jsonConfig returns a copy of the base config that renders JSON into memory.
func (h *toolHandler) jsonConfig() *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = ""
	return cfg
}

func jsonResult(write func(*bytes.Buffer) error) *mcp.CallToolResult {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err))
	}
	return mcp.NewToolResultText(buf.String())
}

func marshalResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

func parseSortArg(s string) (schema.SortKey, error) {
	key, ok := schema.ParseSortKey(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidSortKey, s)
	}
	return key, nil
}

// splitIDs splits a comma-separated id list, dropping blanks.
func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *toolHandler) handleListLanguages(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.jsonConfig()
	cfg.SearchQuery = request.GetString("search", "")
	key, err := parseSortArg(request.GetString("sort", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid list parameters: %v", err)), nil
	}
	cfg.SortKey = key
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	e := core.NewEngine(h.entries)
	if err := core.ApplyFilters(e, cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid list parameters: %v", err)), nil
	}
	result := core.GetListResults(e, cfg)
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteLanguageResults(buf, result, cfg)
	}), nil
}

func (h *toolHandler) handleShowLanguage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	result, err := core.GetDetailResult(core.NewEngine(h.entries), id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	cfg := h.jsonConfig()
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteDetailResults(buf, result, cfg)
	}), nil
}

func (h *toolHandler) handleCompareLanguages(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := splitIDs(request.GetString("ids", ""))
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids is required"), nil
	}
	e := core.NewEngine(h.entries)
	unknown, rejected := core.SelectAll(e, ids)
	result := core.GetComparisonResult(e)
	result.Unknown = unknown
	result.Rejected = rejected

	cfg := h.jsonConfig()
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteComparisonResults(buf, result, cfg)
	}), nil
}

func (h *toolHandler) handleListSubjects(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := core.GetSubjectsResult(schema.DefaultScale())
	cfg := h.jsonConfig()
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteSubjectResults(buf, result, cfg)
	}), nil
}

func (h *toolHandler) handleSessionSearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.SetSearchQuery(request.GetString("query", ""))
	return h.sessionView(), nil
}

func (h *toolHandler) handleSessionSort(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := parseSortArg(request.GetString("key", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid sort parameters: %v", err)), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.SetSortKey(key); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid sort parameters: %v", err)), nil
	}
	return h.sessionView(), nil
}

func (h *toolHandler) handleSessionToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	outcome, err := h.session.ToggleSelection(id)
	resp := toggleResponse{ToggleResult: schema.ToggleResult{
		ID:        id,
		Outcome:   outcome,
		Selection: nonNilIDs(h.session.State().Selection),
	}}
	switch {
	case errors.Is(err, core.ErrSelectionFull):
		resp.Advisory = err.Error()
	case outcome == schema.ToggleIgnored:
		resp.Advisory = fmt.Sprintf("%v: %s", core.ErrUnknownLanguage, id)
	}
	return marshalResult(resp), nil
}

func (h *toolHandler) handleSessionClear(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.ClearSelection()
	return h.sessionState(), nil
}

func (h *toolHandler) handleSessionReset(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.ResetFilters()
	return h.sessionView(), nil
}

func (h *toolHandler) handleSessionView(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessionView(), nil
}

func (h *toolHandler) handleSessionCompare(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	result := core.GetComparisonResult(h.session)
	cfg := h.jsonConfig()
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteComparisonResults(buf, result, cfg)
	}), nil
}

func (h *toolHandler) handleSessionState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessionState(), nil
}

// sessionView renders the visible list of the session. Callers hold h.mu.
func (h *toolHandler) sessionView() *mcp.CallToolResult {
	cfg := h.jsonConfig()
	result := core.GetListResults(h.session, cfg)
	return jsonResult(func(buf *bytes.Buffer) error {
		return outwriter.WriteLanguageResults(buf, result, cfg)
	})
}

// sessionState renders the session state. Callers hold h.mu.
func (h *toolHandler) sessionState() *mcp.CallToolResult {
	state := h.session.State()
	state.Selection = nonNilIDs(state.Selection)
	return marshalResult(state)
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
