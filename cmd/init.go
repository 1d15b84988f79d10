package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seashell-sh/seashell/core/config"
)

// initCmd writes a starter configuration for editing.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a default configuration into the given directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		dest, err := config.Initialize(afero.NewOsFs(), dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
