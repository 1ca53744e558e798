// Package config provides tool configuration for cfgctl using Viper.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/cfgctl/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "cfgctl"

// Config represents the top-level tool configuration.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// ConfigDir holds the base and per-environment override documents.
	ConfigDir string `mapstructure:"config_dir" yaml:"config_dir"`

	// SchemaFile is the JSON Schema the merged configuration must satisfy.
	SchemaFile string `mapstructure:"schema_file" yaml:"schema_file"`

	// OutputDir receives generated .tfvars.json artifacts.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Environments is the closed set of deployment environments.
	Environments []string `mapstructure:"environments" yaml:"environments"`

	Policy Policy `mapstructure:"policy" yaml:"policy"`
}

// Policy holds the tunable knobs of the policy rule engine.
type Policy struct {
	// RequireSecurityGroups enforces at least one attached security
	// group per compute instance.
	RequireSecurityGroups bool `mapstructure:"require_security_groups" yaml:"require_security_groups"`

	// DevInstanceTypes is the allow-list of instance types permitted in dev.
	DevInstanceTypes []string `mapstructure:"dev_instance_types" yaml:"dev_instance_types"`

	// MinBackupRetention is the minimum database backup retention
	// period, in days, enforced in prod.
	MinBackupRetention int `mapstructure:"min_backup_retention" yaml:"min_backup_retention"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("CFGCTL")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("config_dir", paths.DefaultConfigDir)
	viper.SetDefault("schema_file", paths.DefaultSchemaFile)
	viper.SetDefault("output_dir", paths.DefaultOutputDir)
	viper.SetDefault("environments", []string{"dev", "staging", "prod"})
	viper.SetDefault("policy.require_security_groups", true)
	viper.SetDefault("policy.dev_instance_types", []string{"t3.micro", "t3.small"})
	viper.SetDefault("policy.min_backup_retention", 30)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user specified a path, this is an error.
			// Otherwise defaults apply.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects configurations the rest of the tool cannot work with.
func validate(cfg *Config) error {
	if cfg.Version < 1 {
		return errors.New("version must be >= 1")
	}
	if len(cfg.Environments) == 0 {
		return errors.New("environments must not be empty")
	}
	seen := make(map[string]bool, len(cfg.Environments))
	for _, env := range cfg.Environments {
		if env == "" {
			return errors.New("environment names must not be empty")
		}
		if seen[env] {
			return errors.Newf("duplicate environment %q", env)
		}
		seen[env] = true
	}
	if cfg.Policy.MinBackupRetention < 0 {
		return errors.New("policy.min_backup_retention must not be negative")
	}
	return nil
}
