package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/cfgctl/internal/errors"
	"github.com/thoreinstein/cfgctl/internal/pipeline"
	"github.com/thoreinstein/cfgctl/internal/validation"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [environment...]",
	Short: "Validate configurations for one or more environments",
	Long: `Validate merges each environment's configuration and checks it
against the JSON Schema and the policy rules.

With no arguments, every configured environment is validated. A failure
in one environment does not stop the others; all results are reported
and the exit status reflects whether any environment failed.

Exit codes:
  0 - All requested environments are valid
  1 - At least one environment failed validation

Examples:
  # Validate all environments
  cfgctl validate

  # Validate specific environments
  cfgctl validate dev prod

  # JSON output for CI/CD
  cfgctl validate --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args, cmd.OutOrStdout())
	},
}

func runValidate(cmd *cobra.Command, args []string, w io.Writer) error {
	p := pipeline.New(toolConfig)

	names := args
	if len(names) == 0 {
		names = p.Environments().Names()
	}

	reporter := validation.NewReporter(w, reportFormat(validateJSON))

	failed := false
	for _, name := range names {
		result, err := p.Validate(cmd.Context(), name)
		if err != nil {
			failed = true
			if reportErr := reporter.ReportFailure(name, err); reportErr != nil {
				return reportErr
			}
			continue
		}
		if !result.OK() {
			failed = true
		}
		if err := reporter.Report(name, result); err != nil {
			return err
		}
	}

	if failed {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// reportFormat maps the --json flag to a reporter format.
func reportFormat(jsonFlag bool) validation.Format {
	if jsonFlag {
		return validation.FormatJSON
	}
	return validation.FormatText
}
