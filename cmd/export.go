package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/internal/export"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export OUT.db",
	Short: "Write every resolved theme to a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ic, err := loadIcons(cmd.Context())
		if err != nil {
			return err
		}

		start := time.Now()
		stats, err := export.Write(cmd.Context(), args[0], ic)
		if err != nil {
			return err
		}
		logger.Info().
			Str("db", args[0]).
			Dur("took", time.Since(start)).
			Msg("export done")
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d themes, %d chain links, %d directories, %d standalone icons\n",
			stats.Themes, stats.Links, stats.Directories, stats.Standalone)
		return nil
	},
}
