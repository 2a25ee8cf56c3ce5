// Package config loads the schemadoc project configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the schemadoc configuration, loaded from
// schemadoc.yaml with environment variable overrides.
type Config struct {
	Project  ProjectConfig `mapstructure:"project"`
	Manifest string        `mapstructure:"manifest"`
	Output   OutputConfig  `mapstructure:"output"`
	API      APIConfig     `mapstructure:"api"`
}

// ProjectConfig carries project metadata for generated documents.
type ProjectConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

// OutputConfig controls where and how documentation is written.
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// APIConfig describes the documented API's servers.
type APIConfig struct {
	BaseURL string         `mapstructure:"base_url"`
	Servers []ServerConfig `mapstructure:"servers"`
}

// ServerConfig is one additional server entry.
type ServerConfig struct {
	URL         string `mapstructure:"url"`
	Description string `mapstructure:"description"`
}

// Load loads the configuration from schemadoc.yaml or schemadoc.yml in the
// working directory. A missing file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("project.version", "1.0.0")
	v.SetDefault("manifest", "apitypes.yaml")
	v.SetDefault("output.dir", "docs")
	v.SetDefault("output.formats", []string{"openapi"})

	v.SetConfigName("schemadoc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SCHEMADOC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Manifest == "" {
		return fmt.Errorf("manifest path must not be empty")
	}
	if config.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	for _, format := range config.Output.Formats {
		switch format {
		case "openapi", "openapi-yaml", "markdown":
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
	}
	return nil
}
