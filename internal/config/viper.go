package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Dialect struct {
		// File is an optional YAML dialect override, see internal/dialect.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"dialect" yaml:"dialect"`

	Symbols struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // never serialized
	} `mapstructure:"symbols" yaml:"symbols"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables with the AUSZUG prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.auszug-csv")
	v.AddConfigPath(".auszug-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("AUSZUG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key is always read from the unprefixed variable the provider
	// documents.
	if err := v.BindEnv("symbols.api_key", "EODHD_API_KEY"); err != nil {
		Logger.Warnf("Failed to bind EODHD_API_KEY: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("dialect.file", "")
	v.SetDefault("symbols.enabled", false)
}

func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if len(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	return nil
}
