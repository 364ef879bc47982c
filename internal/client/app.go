package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.Sessions == nil {
		return nil, errors.New("client services are not configured")
	}
	if ui == nil {
		return nil, errors.New("ui is not configured")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the session of the configured scope, then runs the UI. A
// session that cannot be restored leaves the client without one; the user
// simply uploads again.
func (a *App) Run(ctx context.Context) error {
	session, ok, err := a.services.Sessions.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("failed to restore session")
	case ok:
		a.logger.Info().Str("func", "App.Run").Str("session_id", session.ID).Msg("session restored")
	default:
		a.logger.Debug().Str("func", "App.Run").Msg("no stored session")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
