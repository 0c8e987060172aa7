package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/internal/config"
	"github.com/agentic-research/xdgicon/internal/icons"
	"github.com/agentic-research/xdgicon/internal/logging"
	"github.com/agentic-research/xdgicon/internal/search"
)

// Version is set at build time.
var Version = "dev"

var (
	configPath string
	extraDirs  []string
	onlyDirs   bool
	logLevel   string

	cfg    *config.Config
	logger = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default $XDG_CONFIG_HOME/xdgicon/config.yaml)")
	rootCmd.PersistentFlags().StringArrayVarP(&extraDirs, "dir", "d", nil, "Extra search directory, searched first (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&onlyDirs, "only-dirs", false, "Search only --dir and configured directories, not the XDG defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:           "xdgicon",
	Short:         "Find icons in XDG icon themes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger, err = logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
		return err
	},
}

// searchDirs are --dir, then configured directories, then the defaults.
func searchDirs() []string {
	dirs := append([]string(nil), extraDirs...)
	dirs = append(dirs, cfg.Dirs...)
	if !onlyDirs {
		dirs = append(dirs, search.DefaultDirs()...)
	}
	return dirs
}

func locate(ctx context.Context) (*search.Locations, error) {
	s := search.New(osfs.New("/"), searchDirs()...)
	s.Logger = logger
	if err := s.Search(ctx); err != nil {
		return nil, fmt.Errorf("search icon directories: %w", err)
	}
	return s.Locations()
}

func loadIcons(ctx context.Context) (*icons.Icons, error) {
	loc, err := locate(ctx)
	if err != nil {
		return nil, err
	}
	return loc.Icons(), nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
