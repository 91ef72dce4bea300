package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PAYROLL_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("roster", os.Getenv("PAYROLL_ROSTER_FILE"), &cfg.RosterFile)
	s.setString("currency", os.Getenv("PAYROLL_CURRENCY"), &cfg.Currency)
	s.setString("locale", os.Getenv("PAYROLL_LOCALE"), &cfg.Locale)
	s.setString("log-level", os.Getenv("PAYROLL_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("PAYROLL_WATCH"), &cfg.Watch)

	return s.setDuration("debounce", os.Getenv("PAYROLL_DEBOUNCE"), &cfg.Debounce)
}
