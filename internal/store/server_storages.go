package store

import (
	"github.com/MKhiriev/go-doc-chat/internal/logger"
)

// ServerStorages bundles the storages of the stub document server.
type ServerStorages struct {
	DocumentSessionRepository DocumentSessionRepository
}

func NewServerStorages(logger *logger.Logger) *ServerStorages {
	logger.Info().Msg("creating new server storages...")

	return &ServerStorages{
		DocumentSessionRepository: NewMemoryDocumentSessionRepository(logger),
	}
}
