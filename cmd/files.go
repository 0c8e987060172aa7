package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files THEME",
	Short: "List the icon files of a theme, excluding inherited ones",
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
		for _, df := range th.Files() {
			for _, f := range df.Files {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", df.Directory.Name, f.Path())
			}
		}
		return nil
	},
}
