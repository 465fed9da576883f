// Package config handles command-line flag parsing and environment variable
// overrides for the bee colony simulator.
//
// Resolution priority: CLI flags > environment variables > defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/model"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "BEESIM_"

// Default values for flags not supplied by the user.
const (
	DefaultYears   = 20
	DefaultAddr    = ":8080"
	DefaultTimeout = 5 * time.Minute
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// Simulation horizon in years.
	Years int
	// StartColonies is the initial colony population. Zero means use the
	// model default.
	StartColonies float64

	// Baseline lever settings.
	BaselineStress  float64
	BaselineMgmt    float64
	BaselineClimate float64

	// Scenario lever settings.
	ScenarioStress  float64
	ScenarioMgmt    float64
	ScenarioClimate float64

	// Execution mode selection.
	Serve bool
	TUI   bool

	// HTTP server settings.
	Addr      string
	StaticDir string

	// Output control.
	JSON    bool
	Quiet   bool
	Verbose bool
	NoColor bool

	// Timeout bounds the whole run in one-shot mode.
	Timeout time.Duration
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set.
// Errors are reported on errWriter alongside flag usage.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	baseline := model.BaselinePreset()
	scenario := model.ScenarioPreset()

	config := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&config.Years, "years", DefaultYears, "Simulation horizon in years (>= 1)")
	fs.Float64Var(&config.StartColonies, "start-colonies", 0, "Initial colony population (0 = model default)")

	fs.Float64Var(&config.BaselineStress, "baseline-stress", baseline.EnvironmentStress, "Baseline environmental stress lever [0,1]")
	fs.Float64Var(&config.BaselineMgmt, "baseline-mgmt", baseline.DiseaseManagement, "Baseline disease management lever [0,1]")
	fs.Float64Var(&config.BaselineClimate, "baseline-climate", baseline.ClimateFactor, "Baseline climate favourability lever [0,1]")

	fs.Float64Var(&config.ScenarioStress, "scenario-stress", scenario.EnvironmentStress, "Scenario environmental stress lever [0,1]")
	fs.Float64Var(&config.ScenarioMgmt, "scenario-mgmt", scenario.DiseaseManagement, "Scenario disease management lever [0,1]")
	fs.Float64Var(&config.ScenarioClimate, "scenario-climate", scenario.ClimateFactor, "Scenario climate favourability lever [0,1]")

	fs.BoolVar(&config.Serve, "serve", false, "Run the HTTP API server instead of a one-shot comparison")
	fs.BoolVar(&config.TUI, "tui", false, "Run the interactive terminal dashboard")

	fs.StringVar(&config.Addr, "addr", DefaultAddr, "HTTP listen address (with -serve)")
	fs.StringVar(&config.StaticDir, "static-dir", "", "Directory of static web assets to serve (with -serve)")

	fs.BoolVar(&config.JSON, "json", false, "Emit the full comparison result as JSON")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress all output except the final summary")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet")
	fs.BoolVar(&config.Verbose, "v", false, "Enable verbose (debug) logging")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored terminal output")

	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Global timeout for the run (e.g. 30s, 5m)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}

	applyEnvOverrides(&config, fs)

	if err := validate(config); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return AppConfig{}, err
	}

	return config, nil
}

// validate rejects configurations the rest of the program cannot act on.
// Lever values are not validated here: the model clamps them.
func validate(config AppConfig) error {
	if config.Years < 1 {
		return apperrors.HorizonError{Years: config.Years}
	}
	if config.StartColonies < 0 {
		return apperrors.StartPopulationError{Colonies: config.StartColonies}
	}
	if config.Serve && config.TUI {
		return apperrors.ConfigError{Message: "-serve and -tui are mutually exclusive"}
	}
	if config.Timeout <= 0 {
		return apperrors.ConfigError{Message: "timeout must be positive"}
	}
	return nil
}

// BaselineLevers returns the baseline lever set from the configuration.
func (c AppConfig) BaselineLevers() model.LeverConfig {
	return model.LeverConfig{
		EnvironmentStress: c.BaselineStress,
		DiseaseManagement: c.BaselineMgmt,
		ClimateFactor:     c.BaselineClimate,
	}
}

// ScenarioLevers returns the scenario lever set from the configuration.
func (c AppConfig) ScenarioLevers() model.LeverConfig {
	return model.LeverConfig{
		EnvironmentStress: c.ScenarioStress,
		DiseaseManagement: c.ScenarioMgmt,
		ClimateFactor:     c.ScenarioClimate,
	}
}
