package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears global viper state between tests.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	// Run from an empty directory so no config.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ConfigDir != "configs" {
		t.Errorf("ConfigDir = %q, want configs", cfg.ConfigDir)
	}
	if cfg.OutputDir != "generated_configs" {
		t.Errorf("OutputDir = %q, want generated_configs", cfg.OutputDir)
	}
	if len(cfg.Environments) != 3 {
		t.Errorf("Environments = %v, want dev/staging/prod", cfg.Environments)
	}
	if !cfg.Policy.RequireSecurityGroups {
		t.Error("RequireSecurityGroups should default to true")
	}
	if cfg.Policy.MinBackupRetention != 30 {
		t.Errorf("MinBackupRetention = %d, want 30", cfg.Policy.MinBackupRetention)
	}
	if len(cfg.Policy.DevInstanceTypes) != 2 {
		t.Errorf("DevInstanceTypes = %v, want [t3.micro t3.small]", cfg.Policy.DevInstanceTypes)
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `version: 1
config_dir: environments
environments:
  - dev
  - staging
  - prod
  - qa
policy:
  require_security_groups: false
  min_backup_retention: 14
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ConfigDir != "environments" {
		t.Errorf("ConfigDir = %q", cfg.ConfigDir)
	}
	if len(cfg.Environments) != 4 || cfg.Environments[3] != "qa" {
		t.Errorf("Environments = %v, want extended set", cfg.Environments)
	}
	if cfg.Policy.RequireSecurityGroups {
		t.Error("RequireSecurityGroups should be false")
	}
	if cfg.Policy.MinBackupRetention != 14 {
		t.Errorf("MinBackupRetention = %d, want 14", cfg.Policy.MinBackupRetention)
	}
	// Untouched keys keep defaults.
	if cfg.SchemaFile != filepath.Join("schemas", "config_schema.json") && cfg.SchemaFile != "schemas/config_schema.json" {
		t.Errorf("SchemaFile = %q, want default", cfg.SchemaFile)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit path")
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty environments", "environments: []\n"},
		{"duplicate environments", "environments: [dev, dev]\n"},
		{"negative retention", "policy:\n  min_backup_retention: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(path); err == nil {
				t.Error("Load() should reject invalid config")
			}
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
