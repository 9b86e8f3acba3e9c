package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/tabstash/internal/config"
	"github.com/hpungsan/tabstash/internal/enrich"
	"github.com/hpungsan/tabstash/internal/store"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"tab_capture": {
		def:     captureToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapture },
	},
	"tab_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"tab_open": {
		def:     openToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOpen },
	},
	"tab_remove": {
		def:     removeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRemove },
	},
	"tab_status": {
		def:     statusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStatus },
	},
	"tab_set_pro": {
		def:     setProToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetPro },
	},
	"tab_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

var captureToolDef = mcp.NewTool("tab_capture",
	mcp.WithDescription("Save a browser tab for later. The title is cleaned up per site (YouTube, GitHub, Zillow, LinkedIn, and others) and missing titles are filled in from page metadata when possible."),
	mcp.WithString("url", mcp.Required(), mcp.Description("Absolute URL of the page to save")),
	mcp.WithString("title", mcp.Description("Raw page title; omit to derive one from the URL")),
	mcp.WithString("favicon", mcp.Description("Favicon URL reported by the page")),
)

var listToolDef = mcp.NewTool("tab_list",
	mcp.WithDescription("List saved tabs, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum items to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Items to skip from the front of the list")),
)

var openToolDef = mcp.NewTool("tab_open",
	mcp.WithDescription("Fetch a saved tab's URL and remove it from the stash."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Tab ID")),
)

var removeToolDef = mcp.NewTool("tab_remove",
	mcp.WithDescription("Remove a saved tab. Removing an unknown ID is a no-op."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Tab ID")),
)

var statusToolDef = mcp.NewTool("tab_status",
	mcp.WithDescription("Report how many tabs are saved and how much free-tier capacity remains."),
)

var setProToolDef = mcp.NewTool("tab_set_pro",
	mcp.WithDescription("Enable or disable Pro status. Pro removes the free-tier tab limit."),
	mcp.WithBoolean("pro", mcp.Required(), mcp.Description("Desired Pro status")),
)

var exportToolDef = mcp.NewTool("tab_export",
	mcp.WithDescription("Export all saved tabs to a Markdown file."),
	mcp.WithString("path", mcp.Description("Destination file path; defaults to exports/ under the data directory")),
)

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with tabstash tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(st *store.Store, disp *enrich.Dispatcher, cfg *config.Config, baseDir, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tabstash",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st, disp, cfg, baseDir)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(st *store.Store, disp *enrich.Dispatcher, cfg *config.Config, baseDir, version string) error {
	s := NewServer(st, disp, cfg, baseDir, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
