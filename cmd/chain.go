package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/xdgicon/api"
)

func init() {
	rootCmd.AddCommand(chainCmd)
}

var chainCmd = &cobra.Command{
	Use:   "chain THEME",
	Short: "Print the order in which a theme and its ancestors are searched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := locate(cmd.Context())
		if err != nil {
			return err
		}
		name := args[0]
		th, ok := loc.Resolve(name)[name]
		if !ok {
			return fmt.Errorf("theme %q not found", name)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, th.Name())
		for _, ancestor := range api.ChainNames(th) {
			_, _ = fmt.Fprintln(out, ancestor)
		}
		return nil
	},
}
