package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agentic-research/xdgicon/internal/cache"
	"github.com/agentic-research/xdgicon/internal/icons"
)

// Loader searches the icon directories from scratch.
type Loader func(ctx context.Context) (*icons.Icons, error)

// ErrNoLoader is returned by Reload on a server built without a Loader.
var ErrNoLoader = errors.New("mcpserver: no loader configured")

// WithLoader enables the rescan tool.
func (s *Server) WithLoader(l Loader) *Server {
	s.loader = l
	return s
}

// Reload runs the loader and swaps in a fresh cache. Lookups in flight finish
// against the old cache; the old cache is dropped afterwards.
func (s *Server) Reload(ctx context.Context) (int, error) {
	if s.loader == nil {
		return 0, ErrNoLoader
	}
	ic, err := s.loader(ctx)
	if err != nil {
		return 0, fmt.Errorf("reload icons: %w", err)
	}
	fresh := cache.NewIconsCache(ic)

	s.mu.Lock()
	s.cache = fresh
	s.mu.Unlock()

	s.Logger.Info().Int("themes", len(ic.Themes)).Msg("icon cache swapped")
	return len(ic.Themes), nil
}

func (s *Server) handleRescan(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.Reload(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("rescan failed", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d themes", n)), nil
}
