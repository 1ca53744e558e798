package commands

import (
	"context"
	"log/slog"
	"testing"

	"github.com/thoreinstein/cfgctl/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	// Save/Restore original state
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name         string
		verbosity    int
		wantEnabled  slog.Level
		wantDisabled slog.Level
	}{
		{"default (0)", 0, slog.LevelInfo, slog.LevelDebug},
		{"verbose (1)", 1, slog.LevelDebug, logging.LevelTrace},
		{"trace (2)", 2, logging.LevelTrace, logging.LevelTrace - 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantEnabled) {
				t.Errorf("expected level %v to be enabled", tt.wantEnabled)
			}
			if logger.Enabled(context.Background(), tt.wantDisabled) {
				t.Errorf("expected level %v to be disabled", tt.wantDisabled)
			}
		})
	}
}

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected an error for --quiet with --verbose")
	}
}
