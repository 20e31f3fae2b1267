package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig holds the DNSimple connection details. Token takes precedence
// over Username and Password.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Sandbox   bool          `mapstructure:"sandbox"`
	Token     string        `mapstructure:"token"`
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
	AccountID string        `mapstructure:"account_id"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `mapstructure:"format"`
}
