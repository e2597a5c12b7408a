package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Uber    UberConfig    `mapstructure:"uber"`
	Output  OutputConfig  `mapstructure:"output"`
	Update  UpdateConfig  `mapstructure:"update"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UberConfig holds the application credentials and optional user tokens
type UberConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	ServerToken  string        `mapstructure:"server_token"`
	RedirectURI  string        `mapstructure:"redirect_uri"`
	Name         string        `mapstructure:"name"`
	AccessToken  string        `mapstructure:"access_token"`
	RefreshToken string        `mapstructure:"refresh_token"`
	BaseURL      string        `mapstructure:"base_url"`
	APIVersion   string        `mapstructure:"api_version"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how API responses are printed
type OutputConfig struct {
	Indent bool `mapstructure:"indent"`
}

// UpdateConfig names the release repository used by the update command
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
