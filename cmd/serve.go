package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/internal/cache"
	"github.com/agentic-research/xdgicon/internal/mcpserver"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve icon lookups as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ic, err := loadIcons(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info().Int("themes", len(ic.Themes)).Msg("serving MCP on stdio")

		srv := mcpserver.New(cache.NewIconsCache(ic), mcpserver.Defaults{
			Theme: cfg.Theme,
			Size:  cfg.Size,
			Scale: cfg.Scale,
		}).WithLoader(loadIcons)
		srv.Logger = logger
		return srv.Serve(Version)
	},
}
