package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/diffreport"
	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/paths"
	"github.com/thoreinstein/shardcfg/internal/shard"
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/internal/treediff"
)

func init() {
	addDiffFlag(diffCmd)
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <data-config-a> <data-config-b>",
	Short: "Compare the shard configs of two data configs",
	Long: `Show how the shard configs derived from two data configs differ.

Exits with status 0 when they are identical, so shards built from one can
be used with the other, and with status 1 otherwise.`,
	Example: `  shardcfg diff old.yaml new.yaml
  shardcfg diff old.yaml new.toml --diff-format unified

See Also: shardcfg verify`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	var sides [2]tree.Mapping
	for i, arg := range args {
		path, err := paths.ExpandHome(arg)
		if err != nil {
			return err
		}
		if sides[i], err = loadNormalized(cmd, path); err != nil {
			return err
		}
	}
	a, b := sides[0], sides[1]

	oldSide, newSide := treediff.Diff(shard.Extract(a), shard.Extract(b))
	if len(oldSide) == 0 && len(newSide) == 0 {
		printf(cmd, "Shard configs are identical\n")
		return nil
	}

	reporter, err := newReporter(cmd)
	if err != nil {
		return err
	}
	err = reporter.Write(diffreport.Sides{
		Title:    args[0] + " vs " + args[1],
		OldLabel: args[0],
		NewLabel: args[1],
		Old:      oldSide,
		New:      newSide,
	})
	if err != nil {
		return err
	}
	return errors.NewExitError(nil, errors.ExitUser)
}
