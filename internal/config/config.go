// Package config provides configuration management for graymatter using
// Viper. The config file carries defaults for the front matter format and
// delimiters; command-line flags always win over config values.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/graymatter/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "graymatter"

// Config represents the top-level configuration structure.
type Config struct {
	// Format selects the front matter syntax: yaml, toml or json.
	Format string `mapstructure:"format" yaml:"format"`

	// Delimiter opens the front matter block.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// CloseDelimiter closes the block; empty means same as Delimiter.
	CloseDelimiter string `mapstructure:"close_delimiter" yaml:"close_delimiter"`

	// ExcerptDelimiter separates excerpt from body; empty means same as
	// Delimiter.
	ExcerptDelimiter string `mapstructure:"excerpt_delimiter" yaml:"excerpt_delimiter"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir(AppName))

	viper.SetEnvPrefix("GRAYMATTER")
	viper.AutomaticEnv()

	viper.SetDefault("format", "yaml")
	viper.SetDefault("delimiter", "---")
	viper.SetDefault("close_delimiter", "")
	viper.SetDefault("excerpt_delimiter", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
