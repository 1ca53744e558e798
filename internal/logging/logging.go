package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// Format selects the log output format.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// LevelTrace sits below slog.LevelDebug for very chatty output
// (enabled at -vv).
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a log level:
// 0 is Info, 1 is Debug, 2 and above is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelInfo
	case v == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// Config describes the logger to build.
type Config struct {
	// Level is the minimum level; records below it are dropped.
	Level slog.Level
	// Format selects text or JSON output.
	Format Format
	// Output receives log records. Defaults to os.Stderr when nil.
	Output io.Writer
}

// New builds a logger for cfg. A nil Output means os.Stderr and an
// unrecognized Format falls back to text.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = NewHandler(output, opts)
	}

	return slog.New(handler)
}

// Default returns the logger used before flags are parsed: Info level,
// text format, stderr.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelInfo, Format: FormatText})
}

// NewDiscard returns a logger that drops every record.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWriter routes handler output through t.Log so records show up in
// failing-test output.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	msg := string(p)
	// t.Log appends its own newline
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest returns a Debug-level logger writing through the test's log.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
