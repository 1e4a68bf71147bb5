package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/shard"
)

func init() {
	addOutputFlag(readCmd)
	addOutputFlag(extractCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(extractCmd)
}

var readCmd = &cobra.Command{
	Use:   "read [data-config]",
	Short: "Print the normalized data config",
	Long: `Read a data config, normalize it, and print the result.

Normalization records each group's inputs in _inputs, propagates
share_inputs, turns input sizes into integer percentages per group,
collects all transforms in _transforms, and fills in the group defaults
split: train and weight: 1.`,
	Example: `  shardcfg read data.yaml
  shardcfg read data.toml -o json

See Also: shardcfg extract, shardcfg validate`,
	Args: dataConfigArgs,
	RunE: runRead,
}

var extractCmd = &cobra.Command{
	Use:   "extract [data-config]",
	Short: "Print the shard config of a data config",
	Long: `Print the part of the normalized data config the shard stage depends on.

This is the document shardcfg save stores and shardcfg verify compares.`,
	Example: `  shardcfg extract data.yaml

See Also: shardcfg save, shardcfg verify`,
	Args: dataConfigArgs,
	RunE: runExtract,
}

func runRead(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	normalized, err := loadNormalized(cmd, path)
	if err != nil {
		return err
	}
	return printTree(cmd, normalized)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	normalized, err := loadNormalized(cmd, path)
	if err != nil {
		return err
	}
	return printTree(cmd, shard.Extract(normalized))
}
