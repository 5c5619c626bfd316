package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"axdesc/internal/domain"
	"axdesc/internal/logging"
)

// Environment variables read by Load.
const (
	EnvDefaultLocale      = "AXDESC_DEFAULT_LOCALE"
	EnvEmitRawSwitchValue = "AXDESC_EMIT_RAW_SWITCH_VALUE"
	EnvLogLevel           = "AXDESC_LOG_LEVEL"
)

type Config struct {
	// DefaultLocale is used when an element carries no locale of its own.
	DefaultLocale string
	// EmitRawSwitchValue announces unrecognised switch values.
	EmitRawSwitchValue bool
	LogLevel           string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DefaultLocale: "en",
		LogLevel:      "info",
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment.
	_ = godotenv.Load()

	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvDefaultLocale)); v != "" {
		cfg.DefaultLocale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEmitRawSwitchValue)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s must be a boolean (%q): %w", EnvEmitRawSwitchValue, v, err)
		}
		cfg.EmitRawSwitchValue = enabled
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on a loaded configuration.
func (c *Config) validate() error {
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: %s (%q): %w", EnvDefaultLocale, c.DefaultLocale, domain.ErrInvalidLocale)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}

	return nil
}
