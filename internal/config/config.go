package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Port         int    `mapstructure:"port"`
	DataFile     string `mapstructure:"data_file"`
	LogFormat    string `mapstructure:"log_format"` // "human" for console output, anything else logs JSON
	OpenBrowser  bool   `mapstructure:"open_browser"`
	SeedDemoData bool   `mapstructure:"seed_demo_data"`
}

// Load reads the configuration from the given file and the environment.
// The file is optional, a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("port", 8000)
	v.SetDefault("data_file", "data/ledger.json")
	v.SetDefault("log_format", "")
	v.SetDefault("open_browser", true)
	v.SetDefault("seed_demo_data", true)

	// Environment variables take precedence over the config file:
	// PORT, DATA_FILE, LOG_FORMAT, OPEN_BROWSER, SEED_DEMO_DATA.
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
