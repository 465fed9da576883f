// Package app wires configuration, logging and the execution modes together.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/beesim/internal/config"
	"github.com/agbru/beesim/internal/logging"
	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/tui"
	"github.com/agbru/beesim/internal/ui"
)

// Application represents the beesim application instance.
type Application struct {
	Config    config.AppConfig
	Constants model.Constants
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithConstants overrides the model constants, mainly for tests.
func WithConstants(c model.Constants) AppOption {
	return func(a *Application) { a.Constants = c }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Constants: model.DefaultConstants(),
		ErrWriter: errWriter,
	}
	for _, opt := range opts {
		opt(app)
	}

	programName := "beesim"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "beesim")
	}

	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Serve:
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	default:
		return a.runCompare(ctx, out)
	}
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := notifySignals(ctx)
	defer stopSignals()

	return tui.Run(ctx, a.Config.BaselineLevers(), a.Config.ScenarioLevers(),
		a.Config.Years, a.Constants, Version)
}

// startColonies resolves the effective starting population.
func (a *Application) startColonies() float64 {
	if a.Config.StartColonies > 0 {
		return a.Config.StartColonies
	}
	return a.Constants.InitialColonies
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
