package main

import (
	"fmt"

	"github.com/reglet-dev/swecommon/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swe",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "swe version %s\n", info.Full())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "swe version %s\n", info.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
