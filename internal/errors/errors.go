package errors

import (
	"errors"
	"fmt"
)

// Exit codes used by the CLI.
const (
	// ExitSuccess means the command completed without failures.
	ExitSuccess = 0

	// ExitUser means a user-correctable failure: invalid input or a
	// configuration that failed validation.
	ExitUser = 1

	// ExitSystem means an environmental failure: I/O, permissions.
	ExitSystem = 2
)

// Sentinels for the failure conditions commands branch on.
var (
	// ErrUnknownEnvironment means the named environment is not in the configured set.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrBaseNotFound means no base configuration document exists.
	ErrBaseNotFound = errors.New("base configuration not found")

	// ErrSchemaNotFound means the schema document is missing.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrValidationFailed means a configuration failed schema or policy checks.
	ErrValidationFailed = errors.New("validation failed")
)

// ExitError carries an exit code and an optional user-facing
// suggestion alongside the underlying error. main unwraps it to decide
// the process exit status.
type ExitError struct {
	// Err is the underlying failure. May be nil when only the code matters.
	Err error

	// Code is the process exit code.
	Code int

	// Suggestion tells the user what to try, when there is something to try.
	Suggestion string
}

// NewExitError wraps err with an exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError wraps err as a user-correctable failure (exit 1).
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError wraps err as an environmental failure (exit 2).
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}
