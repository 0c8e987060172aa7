// Package mcpserver exposes icon lookups as MCP tools.
package mcpserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/agentic-research/xdgicon/api"
	"github.com/agentic-research/xdgicon/internal/cache"
)

// Defaults applied to find_icon calls that leave out an argument.
type Defaults struct {
	Theme string
	Size  int
	Scale int
}

// Server answers tool calls from a shared IconsCache.
type Server struct {
	Logger zerolog.Logger

	mu       sync.Mutex
	cache    *cache.IconsCache
	defaults Defaults
	loader   Loader
}

// New creates a server over c.
func New(c *cache.IconsCache, defaults Defaults) *Server {
	return &Server{Logger: zerolog.Nop(), cache: c, defaults: defaults}
}

// MCP builds the MCP server with every tool registered.
func (s *Server) MCP(version string) *server.MCPServer {
	srv := server.NewMCPServer("xdgicon", version, server.WithToolCapabilities(false))

	srv.AddTool(mcp.NewTool("find_icon",
		mcp.WithDescription("Find the file of an icon in an XDG icon theme, falling back through inherited themes"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Icon name without extension, e.g. firefox")),
		mcp.WithNumber("size", mcp.Description("Requested size in pixels")),
		mcp.WithNumber("scale", mcp.Description("Requested scale factor")),
		mcp.WithString("theme", mcp.Description("Theme to start in")),
	), s.handleFindIcon)

	if s.loader != nil {
		srv.AddTool(mcp.NewTool("rescan",
			mcp.WithDescription("Search the icon directories again and replace the lookup cache"),
		), s.handleRescan)
	}

	srv.AddTool(mcp.NewTool("list_themes",
		mcp.WithDescription("List installed icon themes with their resolved fallback chains"),
	), s.handleListThemes)

	return srv
}

// Serve runs the MCP server on stdin and stdout.
func (s *Server) Serve(version string) error {
	return server.ServeStdio(s.MCP(version))
}

func (s *Server) handleFindIcon(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	size := req.GetInt("size", s.defaults.Size)
	scale := req.GetInt("scale", s.defaults.Scale)
	themeName := req.GetString("theme", s.defaults.Theme)
	if size <= 0 || scale <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("size and scale must be positive, got %d@%d", size, scale)), nil
	}

	s.mu.Lock()
	f, ok := s.cache.FindIcon(name, size, scale, themeName)
	s.mu.Unlock()

	s.Logger.Debug().Str("icon", name).Str("theme", themeName).Bool("found", ok).Msg("find_icon")

	report := api.NewIcon(name, themeName, size, scale, f, ok)
	text := "not found"
	if ok {
		text = f.Path()
	}
	return mcp.NewToolResultStructured(report, text), nil
}

type themeList struct {
	Themes []api.Theme `json:"themes"`
}

func (s *Server) handleListThemes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	ic := s.cache.Icons()
	s.mu.Unlock()

	names := ic.ThemeNames()
	out := themeList{Themes: make([]api.Theme, 0, len(names))}
	for _, name := range names {
		out.Themes = append(out.Themes, api.NewTheme(ic.Themes[name], false))
	}
	return mcp.NewToolResultStructuredOnly(out), nil
}
