package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/beesim/internal/cli"
	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/logging"
	"github.com/agbru/beesim/internal/orchestration"
)

// notifySignals installs SIGINT/SIGTERM cancellation on the context.
func notifySignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// runCompare executes a single baseline/scenario comparison and prints it.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	ctx, stopSignals := notifySignals(ctx)
	defer stopSignals()

	baseline := a.Config.BaselineLevers()
	scenario := a.Config.ScenarioLevers()

	if !a.Config.Quiet && !a.Config.JSON {
		cli.DisplayExecutionConfig(out, baseline, scenario, a.Config.Years, a.startColonies())
	}

	startTime := time.Now()
	result, err := orchestration.Compare(ctx, baseline, scenario,
		a.Config.Years, a.startColonies(), a.Constants)
	elapsed := time.Since(startTime)

	if err != nil {
		wrapped := apperrors.WrapError(err, "comparison over %d years", a.Config.Years)
		a.Logger.Error("comparison failed", wrapped,
			logging.Int("years", a.Config.Years))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", wrapped)
		return apperrors.ExitCodeForError(wrapped, elapsed)
	}

	outputCfg := cli.OutputConfig{
		JSON:    a.Config.JSON,
		Quiet:   a.Config.Quiet,
		Verbose: a.Config.Verbose,
	}
	if err := cli.DisplayResult(out, result, elapsed, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitSuccess
}
