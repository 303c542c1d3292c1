// Package client wires the assembled services and the terminal UI into a
// runnable application with the restore/login/main-loop lifecycle.
package client

import (
	"context"
	"errors"

	"github.com/avolkov/jobscout/internal/config"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/service"
	"github.com/avolkov/jobscout/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a ui")
	}
	return &App{services: services, tui: ui, workers: workers, logger: log}, nil
}

// Run drives the client lifecycle: restore the persisted session, fall back
// to the interactive login flow when restore leaves the session
// unauthenticated, then hand control to the main loop with the background
// catalog refresh running. A logout from the main loop starts the cycle
// over; a quit returns nil.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.Session.Restore(ctx)

	if !a.services.Session.IsAuthenticated() {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.Session.Logout(ctx)
		a.services.RefreshJob.Stop()
		return a.Run()
	}

	return nil
}
