package validation

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes per-environment validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// envReport is the JSON shape of a per-environment report.
type envReport struct {
	Environment string  `json:"environment"`
	Valid       bool    `json:"valid"`
	Error       string  `json:"error,omitempty"`
	Issues      []Issue `json:"issues,omitempty"`
}

// Report writes the validation result for one environment.
func (r *Reporter) Report(env string, result *Result) error {
	if r.format == FormatJSON {
		return r.reportJSON(envReport{
			Environment: env,
			Valid:       result.OK(),
			Issues:      result.Issues,
		})
	}

	if result.OK() {
		fmt.Fprintln(r.out, color.GreenString("✓ Configuration for '%s' is valid", env))
		return nil
	}

	fmt.Fprintln(r.out, color.RedString("✗ Configuration for '%s' is invalid", env))
	for _, issue := range result.Issues {
		r.printIssue(issue)
	}
	return nil
}

// ReportFailure writes a pipeline-level failure (load error, unknown
// environment) that prevented validation from running.
func (r *Reporter) ReportFailure(env string, err error) error {
	if r.format == FormatJSON {
		return r.reportJSON(envReport{
			Environment: env,
			Valid:       false,
			Error:       err.Error(),
		})
	}

	fmt.Fprintln(r.out, color.RedString("✗ %s: %v", env, err))
	return nil
}

func (r *Reporter) reportJSON(report envReport) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) printIssue(i Issue) {
	kind := color.New(color.FgRed).Sprintf("[%s]", i.Kind)
	if i.Path != "" {
		fmt.Fprintf(r.out, "  • %s %s: %s\n", kind, color.CyanString(i.Path), i.Message)
		return
	}
	fmt.Fprintf(r.out, "  • %s %s\n", kind, i.Message)
}
