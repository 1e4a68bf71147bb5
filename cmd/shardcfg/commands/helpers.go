package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	"github.com/thoreinstein/shardcfg/internal/diffreport"
	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/logging"
	"github.com/thoreinstein/shardcfg/internal/normalize"
	"github.com/thoreinstein/shardcfg/internal/paths"
	"github.com/thoreinstein/shardcfg/internal/shard"
	"github.com/thoreinstein/shardcfg/internal/translate"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// outputFormat holds the value of the -o/--output flag of the commands
// printing trees.
var outputFormat string

// diffFormat holds the value of the --diff-format flag of the commands
// reporting differences.
var diffFormat string

// dataConfigArgs accepts an optional data config path; the data_config
// setting supplies the default.
var dataConfigArgs = cobra.MaximumNArgs(1)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "",
		"output format: yaml, json, toml (default: output_format setting)")
}

func addDiffFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&diffFormat, "diff-format", "",
		"difference report style: tree, unified (default: diff_format setting)")
}

// dataConfigPath returns the data config named on the command line, or
// the configured default.
func dataConfigPath(args []string) (string, error) {
	path := settings.DataConfig
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", errors.NewUserError(errors.New("no data config given"),
			"Pass the data config path, or set data_config: shardcfg config list")
	}
	return paths.ExpandHome(path)
}

// loadNormalized reads and normalizes the data config at path.
func loadNormalized(cmd *cobra.Command, path string) (tree.Mapping, error) {
	logger := logging.FromContext(cmd.Context())

	raw, err := dataconfig.Read(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read data config", "path", path, "format", dataconfig.FormatFromPath(path))

	normalized, err := normalize.Normalize(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "normalizing %s", path)
	}
	logger.Debug("normalized data config", "path", path)
	return normalized, nil
}

// printTree writes n to stdout in the selected output format.
func printTree(cmd *cobra.Command, n tree.Node) error {
	name := outputFormat
	if name == "" {
		name = settings.OutputFormat
	}
	format, err := translate.ParseFormat(name)
	if err != nil {
		return errors.NewUserError(err, "Use -o yaml, -o json or -o toml")
	}
	return translate.Write(cmd.OutOrStdout(), n, format)
}

// newReporter returns a difference reporter writing to stdout.
func newReporter(cmd *cobra.Command) (*diffreport.Reporter, error) {
	name := diffFormat
	if name == "" {
		name = settings.DiffFormat
	}
	style, err := diffreport.ParseStyle(name)
	if err != nil {
		return nil, errors.NewUserError(err, "Use --diff-format tree or --diff-format unified")
	}
	out := cmd.OutOrStdout()
	return diffreport.New(out, style, logging.SupportsColor(out)), nil
}

func newGate(cmd *cobra.Command) *shard.Gate {
	return shard.NewGate(shard.WithLogger(logging.FromContext(cmd.Context())))
}

// reportIncompatibility prints the difference report when err is an
// incompatibility, and returns err unchanged.
func reportIncompatibility(cmd *cobra.Command, err error) error {
	var incompatible *shard.IncompatibilityError
	if !errors.As(err, &incompatible) {
		return err
	}
	reporter, rerr := newReporter(cmd)
	if rerr != nil {
		return rerr
	}
	if rerr := reporter.Report(incompatible); rerr != nil {
		return rerr
	}
	return err
}

// printf writes to stdout unless --quiet is set.
func printf(cmd *cobra.Command, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
