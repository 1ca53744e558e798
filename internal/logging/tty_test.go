package logging

import (
	"os"
	"testing"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{name: "NO_COLOR disables color", env: map[string]string{"NO_COLOR": "1"}, isTTY: true, want: false},
		{name: "dumb terminal disables color", env: map[string]string{"TERM": "dumb"}, isTTY: true, want: false},
		{name: "non-TTY disables color", isTTY: false, want: false},
		{name: "plain TTY gets color", env: map[string]string{"TERM": "xterm-256color"}, isTTY: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("TERM")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			// The env logic is tested through the internal split so no
			// real terminal is needed.
			if got := supportsColor(nopWriter{}, tt.isTTY); got != tt.want {
				t.Errorf("supportsColor(isTTY=%v, env=%v) = %v, want %v", tt.isTTY, tt.env, got, tt.want)
			}
		})
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(nopWriter{}) {
		t.Error("IsTTY() = true for a plain writer, want false")
	}
}
