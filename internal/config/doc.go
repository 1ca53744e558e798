// Package config loads the tool's own settings: where configuration
// documents live, which environments exist, and the policy knobs.
//
// Settings resolve in Viper's usual precedence order: explicit flags,
// CFGCTL_* environment variables, a config.yaml in the working directory
// or the XDG config home, then built-in defaults. The environment set
// defaults to dev, staging, prod and is closed once loaded.
package config
