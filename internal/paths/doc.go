// Package paths centralizes filesystem path resolution for cfgctl:
// the configuration directory, schema file, generated-artifact output
// directory, and the XDG config home used for the tool's own settings.
package paths
