package commands

import (
	"fmt"
	"io"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/cfgctl/internal/doctor"
	"github.com/thoreinstein/cfgctl/internal/envs"
	"github.com/thoreinstein/cfgctl/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration repository issues",
	Long: `Run diagnostic checks on the configuration repository.

Verifies the configuration directory layout, parses the base and
override documents, and compiles the JSON Schema, identifying problems
before they surface during validate or generate.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctor(cmd.OutOrStdout())
	},
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.NewUserError(nil, "flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(w io.Writer) error {
	runner := doctor.NewRunner()
	runner.AddCheck(&doctor.ConfigDirCheck{Dir: toolConfig.ConfigDir})
	runner.AddCheck(&doctor.BaseDocumentCheck{Dir: toolConfig.ConfigDir})
	for _, name := range toolConfig.Environments {
		runner.AddCheck(&doctor.OverrideCheck{Dir: toolConfig.ConfigDir, Env: envs.Environment(name)})
	}
	runner.AddCheck(&doctor.SchemaCheck{Path: toolConfig.SchemaFile})
	runner.AddCheck(&doctor.OutputDirCheck{Dir: toolConfig.OutputDir})

	report := runner.Run()

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(crdberrors.Newf("doctor found %d problem(s)", report.Summary.Errors), errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(crdberrors.Newf("doctor found %d warning(s)", report.Summary.Warnings), errors.ExitUser)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return outputDoctorText(w, report)
}

func outputDoctorText(w io.Writer, report *doctor.Report) error {
	// In normal mode, show only errors and warnings
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
