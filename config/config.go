package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/s0up4200/dnsimple/dnsimple"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DNSIMPLE_API_TOKEN
const EnvPrefix = "DNSIMPLE"

// Load loads the configuration from file and environment. Without an explicit
// path a missing config file is not an error.
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
			v.AddConfigPath(filepath.Join(home, ".dnsimple"))
		}

		// Check /etc
		v.AddConfigPath("/etc/dnsimple/")
	}

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

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs one so that
// environment overrides are seen by Unmarshal.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.sandbox", false)
	v.SetDefault("api.token", "")
	v.SetDefault("api.username", "")
	v.SetDefault("api.password", "")
	v.SetDefault("api.account_id", "")
	v.SetDefault("api.user_agent", "")
	v.SetDefault("api.timeout", dnsimple.DefaultTimeout)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Output defaults
	v.SetDefault("output.format", "table")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api.base_url must be an absolute URL: %s", cfg.API.BaseURL)
		}
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive: %s", cfg.API.Timeout)
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

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", cfg.Output.Format)
	}

	return nil
}

// Endpoint returns the base URL requests go to. An explicit base_url wins
// over sandbox.
func (c APIConfig) Endpoint() string {
	switch {
	case c.BaseURL != "":
		return c.BaseURL
	case c.Sandbox:
		return dnsimple.SandboxBaseURL
	default:
		return dnsimple.DefaultBaseURL
	}
}

// Profile names the keyring entry the token for this endpoint is stored under
func (c APIConfig) Profile() string {
	switch {
	case c.BaseURL != "":
		if u, err := url.Parse(c.BaseURL); err == nil && u.Host != "" {
			return u.Host
		}
		return c.BaseURL
	case c.Sandbox:
		return "sandbox"
	default:
		return "production"
	}
}

// ClientOptions returns the dnsimple client options the API section describes
func (c APIConfig) ClientOptions() []dnsimple.Option {
	opts := []dnsimple.Option{dnsimple.WithBaseURL(c.Endpoint())}
	if c.UserAgent != "" {
		opts = append(opts, dnsimple.WithUserAgent(c.UserAgent))
	}
	if c.Timeout > 0 {
		opts = append(opts, dnsimple.WithTimeout(c.Timeout))
	}
	return opts
}
