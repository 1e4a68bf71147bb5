package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	"github.com/thoreinstein/shardcfg/internal/shard"
)

func init() {
	addDiffFlag(verifyCmd)
	addDiffFlag(shardCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(shardCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save [data-config]",
	Short: "Store the shard config",
	Long: `Extract the shard config and store it in
<meta.shard.rootdir>/stored_shard_config.yaml.

The stored file is written once. If it already exists, save fails and
leaves it untouched.`,
	Example: `  shardcfg save data.yaml

See Also: shardcfg shard, shardcfg verify`,
	Args: dataConfigArgs,
	RunE: runSave,
}

var verifyCmd = &cobra.Command{
	Use:   "verify [data-config]",
	Short: "Check a data config against the stored shard config",
	Long: `Derive the shard config again and compare it with the stored one.

On a mismatch the differences are printed and the command exits with
status 1. Settings that only affect training, such as meta.train, group
weights and transforms, never cause a mismatch.`,
	Example: `  shardcfg verify data.yaml
  shardcfg verify data.yaml --diff-format unified

See Also: shardcfg shard, shardcfg diff`,
	Args: dataConfigArgs,
	RunE: runVerify,
}

var shardCmd = &cobra.Command{
	Use:   "shard [data-config]",
	Short: "Store the shard config on the first run, verify it afterwards",
	Long: `Entry point of the shard stage.

When no shard config is stored under meta.shard.rootdir yet, it is stored.
Otherwise the data config is verified against it, so resuming or extending
a sharding run with a changed configuration fails early.`,
	Example: `  shardcfg shard data.yaml

See Also: shardcfg save, shardcfg verify`,
	Args: dataConfigArgs,
	RunE: runShard,
}

func runSave(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	normalized, err := loadNormalized(cmd, path)
	if err != nil {
		return err
	}
	stored, err := newGate(cmd).Save(normalized)
	if err != nil {
		return err
	}
	printf(cmd, "Stored shard config: %s\n", stored)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	normalized, err := loadNormalized(cmd, path)
	if err != nil {
		return err
	}
	if err := newGate(cmd).Verify(normalized); err != nil {
		return reportIncompatibility(cmd, err)
	}
	stored, _ := dataconfig.StoredShardConfigPath(normalized)
	printf(cmd, "Compatible with %s\n", stored)
	return nil
}

func runShard(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	normalized, err := loadNormalized(cmd, path)
	if err != nil {
		return err
	}

	outcome, err := newGate(cmd).SaveOrVerify(normalized)
	if err != nil {
		return reportIncompatibility(cmd, err)
	}

	stored, _ := dataconfig.StoredShardConfigPath(normalized)
	switch outcome {
	case shard.Saved:
		printf(cmd, "Stored shard config: %s\n", stored)
	default:
		printf(cmd, "Compatible with %s\n", stored)
	}
	return nil
}
