package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/normalize"
	"github.com/thoreinstein/shardcfg/internal/validator"
)

// validateJSON holds the value of the --json flag of validate.
var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [data-config]",
	Short: "Check a data config for errors",
	Long: `Check a data config for the problems that would make normalization
fail: undefined groups, non-positive sizes, share_inputs chains and so on.

Warnings, such as derived keys present in the input, are reported but do
not fail the command.`,
	Example: `  shardcfg validate data.yaml
  shardcfg validate data.yaml --json

See Also: shardcfg read`,
	Args: dataConfigArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := dataConfigPath(args)
	if err != nil {
		return err
	}
	raw, err := dataconfig.Read(path)
	if err != nil {
		return err
	}

	result := dataconfig.Validate(raw)
	if !result.HasErrors() {
		// Anything validation does not model still surfaces here
		if _, err := normalize.Normalize(raw); err != nil {
			result.AddError("", err.Error(), nil)
		}
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if !quiet || result.HasErrors() {
		if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(path, result); err != nil {
			return err
		}
	}

	if err := result.Err(); err != nil {
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}
