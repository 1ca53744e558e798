package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrUnknownEnvironment, ExitUser),
			want: "unknown environment",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrBaseNotFound), ExitUser),
			want: "loading config: base configuration not found",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrValidationFailed, ExitUser),
			wantTarget: ErrValidationFailed,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(fmt.Errorf("loading base: %w", ErrBaseNotFound), ExitUser),
			wantTarget: ErrBaseNotFound,
			wantIs:     true,
		},
		{
			name:       "different sentinel does not match",
			err:        NewExitError(ErrBaseNotFound, ExitUser),
			wantTarget: ErrSchemaNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	err := NewUserError(ErrValidationFailed, "re-run after fixing the reported issues")
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion == "" {
		t.Error("expected a suggestion")
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(errors.New("permission denied"), "check directory permissions")
	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}
