package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/cfgctl/internal/config"
	"github.com/thoreinstein/cfgctl/internal/errors"
)

const testSchema = `{
  "type": "object",
  "required": ["compute_instances"],
  "properties": {
    "compute_instances": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "instance_type"]
      }
    },
    "security_groups": {"type": "array"},
    "databases": {"type": "array"}
  }
}`

// setupRepo writes a config repo into a temp dir and points toolConfig
// at it for the duration of the test.
func setupRepo(t *testing.T, documents map[string]string) {
	t.Helper()
	root := t.TempDir()

	configDir := filepath.Join(root, "configs")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	for name, content := range documents {
		require.NoError(t, os.WriteFile(filepath.Join(configDir, name), []byte(content), 0o644))
	}

	schemaPath := filepath.Join(root, "config_schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	orig := toolConfig
	t.Cleanup(func() { toolConfig = orig })
	toolConfig = &config.Config{
		Version:      1,
		ConfigDir:    configDir,
		SchemaFile:   schemaPath,
		OutputDir:    filepath.Join(root, "generated_configs"),
		Environments: []string{"dev", "staging", "prod"},
		Policy: config.Policy{
			RequireSecurityGroups: true,
			DevInstanceTypes:      []string{"t3.micro", "t3.small"},
			MinBackupRetention:    30,
		},
	}
}

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.SetContext(context.Background())
	return c
}

const validBase = `
compute_instances:
  - name: web
    instance_type: t3.small
    security_groups: [web-sg]
security_groups:
  - name: web-sg
databases:
  - name: main
    publicly_accessible: false
    backup_retention_period: 35
`

func TestRunValidate_AllEnvironmentsValid(t *testing.T) {
	setupRepo(t, map[string]string{"base.yaml": validBase})

	var buf bytes.Buffer
	err := runValidate(testCommand(t), nil, &buf)

	require.NoError(t, err)
	out := buf.String()
	for _, env := range []string{"dev", "staging", "prod"} {
		assert.Contains(t, out, "Configuration for '"+env+"' is valid")
	}
}

func TestRunValidate_ContinuesAfterFailure(t *testing.T) {
	// The dev guardrail rejects t3.large, so dev fails while staging
	// and prod still pass and are still reported.
	setupRepo(t, map[string]string{
		"base.yaml": validBase,
		"dev.yaml": `
compute_instances:
  - name: web
    instance_type: t3.large
`,
	})

	var buf bytes.Buffer
	err := runValidate(testCommand(t), nil, &buf)

	require.Error(t, err)
	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, errors.ExitUser, exitErr.Code)

	out := buf.String()
	assert.Contains(t, out, "Configuration for 'dev' is invalid")
	assert.Contains(t, out, "Configuration for 'staging' is valid")
	assert.Contains(t, out, "Configuration for 'prod' is valid")
}

func TestRunValidate_UnknownEnvironmentIsReported(t *testing.T) {
	setupRepo(t, map[string]string{"base.yaml": validBase})

	var buf bytes.Buffer
	err := runValidate(testCommand(t), []string{"qa", "prod"}, &buf)

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "qa")
	assert.Contains(t, out, "unknown environment")
	// The valid environment after the failure is still processed.
	assert.Contains(t, out, "Configuration for 'prod' is valid")
}

func TestRunValidate_SpecificEnvironment(t *testing.T) {
	setupRepo(t, map[string]string{"base.yaml": validBase})

	var buf bytes.Buffer
	err := runValidate(testCommand(t), []string{"staging"}, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "staging")
	assert.NotContains(t, buf.String(), "'dev'")
}

func TestRunValidate_ProdHardening(t *testing.T) {
	setupRepo(t, map[string]string{
		"base.yaml": validBase,
		"prod.yaml": `
databases:
  - name: main
    publicly_accessible: true
    backup_retention_period: 7
`,
	})

	var buf bytes.Buffer
	err := runValidate(testCommand(t), []string{"prod"}, &buf)

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "publicly accessible")
	assert.Contains(t, out, "backup retention")
}
