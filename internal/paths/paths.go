package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default locations, relative to the working directory, matching the
// conventional layout of a configuration repository.
const (
	// DefaultConfigDir holds the base and per-environment documents.
	DefaultConfigDir = "configs"

	// DefaultSchemaFile is the JSON Schema describing the merged shape.
	DefaultSchemaFile = "schemas/config_schema.json"

	// DefaultOutputDir receives generated artifacts.
	DefaultOutputDir = "generated_configs"
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified
// permissions. If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ArtifactPath returns the output path for an environment's generated
// artifact inside outputDir, e.g. "generated_configs/dev.tfvars.json".
func ArtifactPath(outputDir, env string) string {
	return filepath.Join(outputDir, env+".tfvars.json")
}
