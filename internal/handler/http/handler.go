package http

import (
	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/service"
)

type Handler struct {
	services      *service.ServerServices
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}
	return &Handler{
		services:      services,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
