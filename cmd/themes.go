package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/api"
)

var (
	themesJSON   bool
	themesSelect string
	themesHidden bool
)

func init() {
	themesCmd.Flags().BoolVar(&themesJSON, "json", false, "Print a JSON report")
	themesCmd.Flags().StringVar(&themesSelect, "select", "", "JSONPath applied to the JSON report (implies --json)")
	themesCmd.Flags().BoolVar(&themesHidden, "hidden", false, "Include themes marked Hidden")
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List installed icon themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ic, err := loadIcons(cmd.Context())
		if err != nil {
			return err
		}

		reports := []api.Theme{}
		for _, name := range ic.ThemeNames() {
			r := api.NewTheme(ic.Themes[name], themesJSON || themesSelect != "")
			if r.Hidden && !themesHidden {
				continue
			}
			reports = append(reports, r)
		}

		out := cmd.OutOrStdout()
		if !themesJSON && themesSelect == "" {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, r := range reports {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d dirs\n", r.Name, r.DisplayName, len(ic.Themes[r.Name].Directories()))
			}
			return w.Flush()
		}

		data, err := json.Marshal(reports)
		if err != nil {
			return err
		}
		var doc any
		if doc, err = oj.Parse(data); err != nil {
			return fmt.Errorf("parse report: %w", err)
		}
		if themesSelect != "" {
			x, err := jp.ParseString(themesSelect)
			if err != nil {
				return fmt.Errorf("invalid jsonpath '%s': %w", themesSelect, err)
			}
			doc = x.Get(doc)
		}
		_, _ = fmt.Fprintln(out, oj.JSON(doc, &ojg.Options{Indent: 2, Sort: true}))
		return nil
	},
}
