package cmd

import (
	"fmt"

	"github.com/openbr/plugin-docs/internal/runtime"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version, git commit, and build time of plugin-docs.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), runtime.VersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
