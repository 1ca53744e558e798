package doctor

import "time"

// Check is one diagnostic probe.
type Check interface {
	// Name identifies the check.
	Name() string

	// Category groups related checks (layout, documents, schema).
	Category() string

	// Run executes the check.
	Run() *CheckResult
}

// Runner executes checks in registration order and aggregates results.
type Runner struct {
	checks []Check
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{checks: make([]Check, 0)}
}

// AddCheck registers a check.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every registered check and returns the report.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		report.Results = append(report.Results, result)

		switch result.Status {
		case SeverityPass:
			report.Summary.Passed++
		case SeverityInfo:
			report.Summary.Info++
		case SeverityWarning:
			report.Summary.Warnings++
		case SeverityError:
			report.Summary.Errors++
		}
	}

	return report
}

// Report is the outcome of one diagnostic run.
type Report struct {
	// Timestamp is when the run started.
	Timestamp time.Time `json:"timestamp"`

	// Results holds one entry per check, in registration order.
	Results []*CheckResult `json:"results"`

	// Summary counts results by severity.
	Summary Summary `json:"summary"`
}

// HasErrors reports whether any check ended with SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check ended with SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
