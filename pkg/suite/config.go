package suite

import "time"

// Config holds runtime configuration for a suite run.
type Config struct {
	// SuiteID identifies which suite this config is for.
	SuiteID ID `json:"suite_id"`

	// ResultsDir is the directory where result JSON files are
	// written. Left empty, the runner derives a timestamped
	// directory per run.
	ResultsDir string `json:"results_dir"`

	// LogsDir is the directory where log files are written.
	LogsDir string `json:"logs_dir"`

	// Timeout is the maximum duration for the whole suite
	// run. A zero value means the runner default applies.
	Timeout time.Duration `json:"timeout"`

	// StaleThreshold is the maximum idle time between step
	// completions before the run is considered stuck. A zero
	// value means the runner default applies.
	StaleThreshold time.Duration `json:"stale_threshold"`

	// Verbose enables detailed logging output.
	Verbose bool `json:"verbose"`

	// Environment holds key-value pairs available to checks
	// compiled from this config.
	Environment map[string]string `json:"environment"`

	// Dependencies maps suite IDs to the file paths of their
	// result JSON files, letting downstream suites inspect
	// upstream outcomes.
	Dependencies map[ID]string `json:"dependencies"`
}

// NewConfig creates a Config with sensible defaults.
func NewConfig(id ID) *Config {
	return &Config{
		SuiteID:      id,
		Timeout:      5 * time.Minute,
		Environment:  make(map[string]string),
		Dependencies: make(map[ID]string),
	}
}

// GetEnv returns the value of an environment variable from
// the config, or the fallback if not set.
func (c *Config) GetEnv(key, fallback string) string {
	if c.Environment == nil {
		return fallback
	}
	if v, ok := c.Environment[key]; ok {
		return v
	}
	return fallback
}
