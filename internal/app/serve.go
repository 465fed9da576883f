package app

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/logging"
	"github.com/agbru/beesim/internal/server"
)

// shutdownGracePeriod bounds how long in-flight requests may drain.
const shutdownGracePeriod = 10 * time.Second

// runServe starts the HTTP API server and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := notifySignals(ctx)
	defer stopSignals()

	srv := server.New(server.Config{
		Addr:      a.Config.Addr,
		StaticDir: a.Config.StaticDir,
		Security:  server.DefaultSecurityConfig(),
		Constants: a.Constants,
	}, a.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.Logger.Info("server listening",
		logging.String("addr", a.Config.Addr),
		logging.String("version", Version))

	select {
	case err := <-errCh:
		if err != nil {
			a.Logger.Error("server failed", err)
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("shutdown failed", err)
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitSuccess
}
