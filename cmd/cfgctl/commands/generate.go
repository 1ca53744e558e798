package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/cfgctl/internal/errors"
	"github.com/thoreinstein/cfgctl/internal/pipeline"
	"github.com/thoreinstein/cfgctl/internal/validation"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <environment>",
	Short: "Generate the .tfvars.json artifact for an environment",
	Long: `Generate merges and validates one environment's configuration and,
when it passes, writes the merged result as an indented JSON artifact
to the output directory, e.g. generated_configs/prod.tfvars.json.

A configuration that fails schema or policy validation produces no
artifact; the violations are reported instead.

Examples:
  # Generate the production artifact
  cfgctl generate prod`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], cmd.OutOrStdout())
	},
}

func runGenerate(cmd *cobra.Command, name string, w io.Writer) error {
	p := pipeline.New(toolConfig)

	result, path, err := p.Generate(cmd.Context(), name)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	if !result.OK() {
		reporter := validation.NewReporter(w, validation.FormatText)
		if err := reporter.Report(name, result); err != nil {
			return err
		}
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}

	fmt.Fprintln(w, color.GreenString("Successfully generated '%s' for '%s'.", path, name))
	return nil
}
