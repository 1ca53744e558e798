// Package validation defines the validation issue model shared by the
// schema validator and the policy rule engine, and the reporter that
// renders results for humans or machines.
package validation

import (
	"fmt"
	"strings"
)

// Kind identifies which pipeline stage produced an issue.
type Kind string

const (
	// KindSchema marks a structural schema violation.
	KindSchema Kind = "schema"
	// KindPolicy marks a business-rule violation.
	KindPolicy Kind = "policy"
)

// Issue represents a single validation problem.
type Issue struct {
	// Kind indicates the producing stage.
	Kind Kind `json:"kind"`
	// Path locates the offending node, e.g. "compute_instances[0].replicas".
	// Empty for document-level issues.
	Path string `json:"path,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(string(i.Kind))
	sb.WriteString(": ")
	if i.Path != "" {
		fmt.Fprintf(&sb, "at %q: ", i.Path)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues for one environment.
type Result struct {
	Issues []Issue `json:"issues,omitempty"`
}

// OK returns true if the result holds no issues.
func (r *Result) OK() bool {
	return r == nil || len(r.Issues) == 0
}

// Add appends an issue to the result.
func (r *Result) Add(kind Kind, path, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends all issues from other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// ByKind returns the issues produced by the given stage.
func (r *Result) ByKind(kind Kind) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, i := range r.Issues {
		if i.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}
