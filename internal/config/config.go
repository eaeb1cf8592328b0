// Package config provides Viper-based configuration management for evctl
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete evctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig contains backend connection settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig contains session persistence settings
type SessionConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set config file if specified
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .evctl.yaml
		v.SetConfigName(".evctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/evctl")
	}

	// Environment variables
	v.SetEnvPrefix("EVCTL")
	v.AutomaticEnv()

	// EVCTL_API_URL is the documented override for the backend address
	if apiURL := os.Getenv("EVCTL_API_URL"); apiURL != "" {
		v.Set("api.base_url", apiURL)
	}

	// Set defaults
	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Resolve session file path if not set
	if cfg.Session.File == "" {
		cfg.Session.File = DefaultSessionFile()
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	// Backend defaults
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 30*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Output defaults
	v.SetDefault("output.colors", true)
}

// DefaultSessionFile returns the default session file location,
// honoring XDG_CONFIG_HOME when set.
func DefaultSessionFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "evctl", "session.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".evctl-session.json")
	}
	return filepath.Join(home, ".config", "evctl", "session.json")
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	// Validate the backend URL parses and carries a scheme
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url %q: %w", cfg.API.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.base_url %q: scheme must be http or https", cfg.API.BaseURL)
	}

	// Validate request timeout
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("invalid api.timeout: must be positive, got %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
