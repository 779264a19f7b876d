// Package config loads the bootstrap settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrFailedToParseConfig = errors.New("failed to parse config from env")

// Config holds the runtime settings of the bootstrap.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `env:"SETUP_LOG_LEVEL" envDefault:"info"`

	// LogFile receives the log output. Empty or "console" logs to stderr.
	LogFile string `env:"SETUP_LOG_FILE"`

	// TempDir holds the extracted installer and package. Empty uses the system's temporary directory.
	TempDir string `env:"SETUP_TEMP_DIR"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrFailedToParseConfig, err)
	}
	return cfg, nil
}
