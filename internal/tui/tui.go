// Package tui implements the terminal screen of the doc-chat client on top of
// bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/render"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/MKhiriev/go-doc-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	renderer  render.Renderer
	wordWrap  int
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	renderer render.Renderer,
	appCfg config.ClientApp,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services:  services,
		renderer:  renderer,
		wordWrap:  appCfg.WordWrap,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the screen and blocks until the user quits or ctx is cancelled.
// The session held by services, if any, is offered for chatting right away.
func (t *TUI) Run(ctx context.Context) error {
	model := newModel(ctx, t.services, t.renderer, t.wordWrap, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}
