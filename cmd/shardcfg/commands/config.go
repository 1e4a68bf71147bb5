package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shardcfg/internal/config"
	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/paths"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show shardcfg settings",
	Long: `Show the settings of shardcfg itself, read from ./config.yaml or
<config home>/shardcfg/config.yaml and overridable with SHARDCFG_*
environment variables.

Without a subcommand, lists all settings.`,
	Example: `  shardcfg config
  shardcfg config get data_config
  SHARDCFG_DIFF_FORMAT=unified shardcfg config get diff_format

See Also: shardcfg config path`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings as YAML",
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file in use",
	RunE:  runConfigPath,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys, key) {
		return errors.NewUserError(errors.Newf("unknown setting %q", key),
			"Run: shardcfg config list")
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "marshaling settings")
	}
	_, err = cmd.OutOrStdout().Write(out)
	return errors.Wrap(err, "writing settings")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(cmd.OutOrStdout(), used)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (not present, using defaults)\n", paths.ConfigFile())
	return nil
}
