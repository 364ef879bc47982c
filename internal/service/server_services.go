package service

import (
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/store"
)

// ServerServices bundles the services behind the stub document server.
type ServerServices struct {
	Index DocumentIndexService
}

func NewServerServices(storages *store.ServerStorages, logger *logger.Logger) *ServerServices {
	return &ServerServices{
		Index: NewDocumentIndexService(storages.DocumentSessionRepository, logger),
	}
}
