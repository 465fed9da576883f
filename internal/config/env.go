// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the BEESIM_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped as numeric, duration, string, then boolean.
var envOverrides = []envOverride{
	// Numeric overrides
	{"YEARS", []string{"years"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Years = parsed
		}
	}},
	{"START_COLONIES", []string{"start-colonies"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.StartColonies = parsed
		}
	}},
	{"BASELINE_STRESS", []string{"baseline-stress"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BaselineStress = parsed
		}
	}},
	{"BASELINE_MGMT", []string{"baseline-mgmt"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BaselineMgmt = parsed
		}
	}},
	{"BASELINE_CLIMATE", []string{"baseline-climate"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BaselineClimate = parsed
		}
	}},
	{"SCENARIO_STRESS", []string{"scenario-stress"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ScenarioStress = parsed
		}
	}},
	{"SCENARIO_MGMT", []string{"scenario-mgmt"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ScenarioMgmt = parsed
		}
	}},
	{"SCENARIO_CLIMATE", []string{"scenario-climate"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ScenarioClimate = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ADDR", []string{"addr"}, func(c *AppConfig, v string) {
		c.Addr = v
	}},
	{"STATIC_DIR", []string{"static-dir"}, func(c *AppConfig, v string) {
		c.StaticDir = v
	}},

	// Boolean overrides
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.Serve = parseBoolEnv(v, c.Serve)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) {
		c.JSON = parseBoolEnv(v, c.JSON)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with BEESIM_):
//   - YEARS, START_COLONIES, BASELINE_STRESS, BASELINE_MGMT, BASELINE_CLIMATE,
//     SCENARIO_STRESS, SCENARIO_MGMT, SCENARIO_CLIMATE, TIMEOUT, ADDR,
//     STATIC_DIR, SERVE, TUI, JSON, QUIET, VERBOSE, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
