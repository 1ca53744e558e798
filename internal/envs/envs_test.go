package envs

import (
	"errors"
	"testing"

	cfgerrors "github.com/thoreinstein/cfgctl/internal/errors"
)

func TestSet_Parse(t *testing.T) {
	set := NewSet([]string{"dev", "staging", "prod"})

	tests := []struct {
		name    string
		arg     string
		want    Environment
		wantErr bool
	}{
		{"known dev", "dev", Dev, false},
		{"known prod", "prod", Prod, false},
		{"unknown", "qa", "", true},
		{"case sensitive", "Dev", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := set.Parse(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cfgerrors.ErrUnknownEnvironment) {
				t.Errorf("error should wrap ErrUnknownEnvironment, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestSet_ExtendedSet(t *testing.T) {
	set := NewSet([]string{"dev", "staging", "prod", "qa"})

	env, err := set.Parse("qa")
	if err != nil {
		t.Fatalf("Parse(qa) error = %v", err)
	}
	if env != Environment("qa") {
		t.Errorf("Parse(qa) = %q", env)
	}
	if !set.Contains(env) {
		t.Error("Contains(qa) = false")
	}
}

func TestSet_String(t *testing.T) {
	set := NewSet([]string{"dev", "prod"})
	if got := set.String(); got != "dev, prod" {
		t.Errorf("String() = %q, want %q", got, "dev, prod")
	}
}
