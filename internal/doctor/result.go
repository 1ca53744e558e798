// Package doctor runs diagnostic checks over a cfgctl configuration
// repository: directory layout, document parsability, and schema
// health.
package doctor

// Severity classifies a check outcome.
type Severity int

const (
	// SeverityPass means the check found nothing wrong.
	SeverityPass Severity = iota

	// SeverityInfo is informational output, not a problem.
	SeverityInfo

	// SeverityWarning is a potential issue that does not block operation.
	SeverityWarning

	// SeverityError is a problem that will break validate or generate.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// CheckResult is the outcome of one diagnostic check.
type CheckResult struct {
	// Name identifies the check.
	Name string `json:"name"`

	// Category groups related checks (layout, documents, schema).
	Category string `json:"category"`

	// Status is the outcome severity.
	Status Severity `json:"status"`

	// Message describes the outcome.
	Message string `json:"message"`

	// Details holds check-specific context (paths, counts).
	Details map[string]any `json:"details,omitempty"`

	// FixHint suggests how to resolve the issue, when known.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts check results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}
