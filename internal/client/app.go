package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/internal/tui"
)

var errNilDependency = errors.New("client dependency is nil")

var _ SignupUI = (*tui.TUI)(nil)

type App struct {
	services *service.ClientServices
	ui       SignupUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui SignupUI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SignupService == nil {
		return nil, fmt.Errorf("%w: services", errNilDependency)
	}
	if ui == nil {
		return nil, fmt.Errorf("%w: ui", errNilDependency)
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the signup form until the user quits. Quitting with ctrl+c is a
// normal exit.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Bool("offline", a.services.SignupService.Offline()).Msg("starting signup client")

	err := a.ui.SignupFlow(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("signup client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("signup client interrupted")
		return nil
	default:
		return fmt.Errorf("run signup form: %w", err)
	}
}
