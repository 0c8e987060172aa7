package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/api"
	"github.com/agentic-research/xdgicon/internal/cache"
	"github.com/agentic-research/xdgicon/internal/icon"
)

// ErrIconNotFound is returned by find when no file matches.
var ErrIconNotFound = errors.New("icon not found")

var (
	findSize   int
	findScale  int
	findTheme  string
	findCached bool
	findJSON   bool
)

func init() {
	findCmd.Flags().IntVarP(&findSize, "size", "s", 0, "Icon size in pixels (default from config)")
	findCmd.Flags().IntVar(&findScale, "scale", 0, "Scale factor (default from config)")
	findCmd.Flags().StringVarP(&findTheme, "theme", "t", "", "Theme to start in (default from config)")
	findCmd.Flags().BoolVar(&findCached, "cached", false, "Answer every name through one lookup cache")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Print JSON reports")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find NAME...",
	Short: "Print the file that best matches each icon name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, scale, themeName := cfg.Size, cfg.Scale, cfg.Theme
		if findSize != 0 {
			size = findSize
		}
		if findScale != 0 {
			scale = findScale
		}
		if findTheme != "" {
			themeName = findTheme
		}
		if size <= 0 || scale <= 0 {
			return fmt.Errorf("size and scale must be positive, got %d@%d", size, scale)
		}

		ic, err := loadIcons(cmd.Context())
		if err != nil {
			return err
		}

		lookup := func(name string) (icon.File, bool) {
			return ic.FindIcon(name, size, scale, themeName)
		}
		if findCached {
			c := cache.NewIconsCache(ic)
			lookup = func(name string) (icon.File, bool) {
				return c.FindIcon(name, size, scale, themeName)
			}
		}

		out := cmd.OutOrStdout()
		var missing []string
		for _, name := range args {
			f, ok := lookup(name)
			if !ok {
				missing = append(missing, name)
			}
			switch {
			case findJSON:
				data, err := json.Marshal(api.NewIcon(name, themeName, size, scale, f, ok))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, string(data))
			case ok:
				_, _ = fmt.Fprintln(out, f.Path())
			}
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %v", ErrIconNotFound, missing)
		}
		return nil
	},
}
