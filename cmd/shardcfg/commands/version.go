package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/cmd"
)

func init() {
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("shardcfg version {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of shardcfg.`,
	Run: func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		fmt.Fprintf(out, "shardcfg version %s\n", cmd.Version)
		fmt.Fprintf(out, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(out, "  built:  %s\n", cmd.Date)
	},
}
