// Package commands implements the CLI commands for shardcfg.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/config"
	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// settings holds the loaded tool settings. It is never nil after initConfig.
var settings = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"settings file (default: ./config.yaml or <config home>/shardcfg/config.yaml)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load(configFile)
	configLoadErr = err
	if err == nil {
		settings = cfg
	}
}

var rootCmd = &cobra.Command{
	Use:   "shardcfg",
	Short: "Keep sharded data in step with its data configuration",
	Long: `shardcfg normalizes the data configuration of a two-stage pipeline
(shard, then train) and guards the contract between the stages.

The shard stage stores the part of the normalized configuration it depends
on in <meta.shard.rootdir>/stored_shard_config.yaml. Every later run
derives that part again and refuses to continue if it no longer matches,
printing exactly what changed.`,
	Example: `  # Shard: store the contract on the first run, verify it afterwards
  shardcfg shard data.yaml

  # Check a modified config before training
  shardcfg verify data.yaml

  # Inspect the normalized config
  shardcfg read data.yaml -o json

  See Also: shardcfg validate, shardcfg diff`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the logger from the verbosity flags and puts it
// on the command context.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv("SHARDCFG_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	cfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// PrintError writes err and its suggestion to w and returns the exit code
// for it. An ExitError without an underlying error only sets the code.
func PrintError(w io.Writer, err error) int {
	exitErr := errors.FromError(err)
	if exitErr == nil {
		return errors.ExitSuccess
	}
	if exitErr.Err != nil {
		fmt.Fprintf(w, "Error: %s\n", exitErr.Err)
		if exitErr.Suggestion != "" {
			fmt.Fprintf(w, "Hint: %s\n", exitErr.Suggestion)
		}
	}
	return exitErr.Code
}
