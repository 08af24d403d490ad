// Package config handles interception settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for the interception integration layer.
// The core engine and repository are not configurable; these switches govern
// how an integration such as nethttp.Transport behaves.
type Config struct {
	// Enabled turns interception on. When false the integration passes
	// every request straight through to the real client.
	Enabled bool `env:"INTERCEPT_ENABLED" envDefault:"true"`

	// Record captures real responses into the observed cache.
	Record bool `env:"INTERCEPT_RECORD" envDefault:"true"`

	// PassthroughOnError lets the real request proceed when interception
	// itself fails. The engine never falls back on its own; this is the
	// integration's policy.
	PassthroughOnError bool `env:"INTERCEPT_PASSTHROUGH_ON_ERROR" envDefault:"false"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `env:"INTERCEPT_LOG_LEVEL" envDefault:"info"`

	// LogFormat is the log output format: text or json.
	LogFormat string `env:"INTERCEPT_LOG_FORMAT" envDefault:"text"`
}

// Default returns the configuration used when no environment is consulted.
func Default() Config {
	return Config{
		Enabled:   true,
		Record:    true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
