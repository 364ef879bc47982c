package handler

import (
	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/handler/http"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ServerServices, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || services.Index == nil {
		return nil, errNoServices
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
