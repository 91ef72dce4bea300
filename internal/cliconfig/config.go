package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/payroll/internal/logging"
	"github.com/bft-labs/payroll/pkg/roster"
)

// DefaultRosterFile is the roster definition read when none is configured.
const DefaultRosterFile = "roster.toml"

// Config holds CLI configuration for payroll.
type Config struct {
	RosterFile string

	Currency string
	Locale   string
	LogLevel string

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RosterFile: DefaultRosterFile,
		Currency:   roster.EnglishFormat.Currency,
		Locale:     "en",
		LogLevel:   logging.DefaultLevel,
		Debounce:   100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and normalises values.
func (c *Config) Validate() error {
	if c.RosterFile == "" {
		return fmt.Errorf("roster file is required")
	}

	c.Locale = strings.ToLower(c.Locale)
	if _, ok := roster.FormatFor(c.Locale); !ok {
		return fmt.Errorf("unsupported locale %q (want en or fr)", c.Locale)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	return nil
}

// Format returns the payslip labels for the configured locale and currency.
func (c Config) Format() roster.Format {
	f, _ := roster.FormatFor(c.Locale)
	return f.WithCurrency(c.Currency)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
