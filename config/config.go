package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. UBERGO_UBER_SERVER_TOKEN.
const EnvPrefix = "UBERGO"

// Load loads the configuration from file and environment. A missing config
// file is only an error when configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ubergo"))
		}

		// Check /etc
		v.AddConfigPath("/etc/ubergo/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Uber defaults
	v.SetDefault("uber.client_id", "")
	v.SetDefault("uber.client_secret", "")
	v.SetDefault("uber.server_token", "")
	v.SetDefault("uber.redirect_uri", "")
	v.SetDefault("uber.name", "ubergo")
	v.SetDefault("uber.access_token", "")
	v.SetDefault("uber.refresh_token", "")
	v.SetDefault("uber.base_url", "https://api.uber.com/")
	v.SetDefault("uber.api_version", "v1")
	v.SetDefault("uber.timeout", "30s")

	// Output defaults
	v.SetDefault("output.indent", true)

	// Update defaults
	v.SetDefault("update.repository", "s0up4200/ubergo")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Uber.ServerToken == "" && cfg.Uber.ClientID == "" {
		return fmt.Errorf("uber.server_token or uber.client_id must be set")
	}

	if cfg.Uber.ServerToken == "your-server-token-here" {
		return fmt.Errorf("uber.server_token must be set to a valid token")
	}

	if cfg.Uber.ClientID != "" && cfg.Uber.ClientSecret == "" {
		return fmt.Errorf("uber.client_secret is required when uber.client_id is set")
	}

	if cfg.Uber.Timeout < 0 {
		return fmt.Errorf("uber.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
