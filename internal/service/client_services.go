package service

import (
	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/store"
)

// ClientServices bundles the services the UI talks to. Documents and Chat
// share one SessionManager, which is what ties an upload to later chats.
type ClientServices struct {
	Sessions  SessionManager
	Documents ClientDocumentService
	Chat      ClientChatService
}

func NewClientServices(localStore *store.ClientStorages, docChatAdapter adapter.DocChatAdapter, scope string, logger *logger.Logger) *ClientServices {
	sessions := NewSessionManager(localStore.SessionRepository, scope, logger)

	return &ClientServices{
		Sessions:  sessions,
		Documents: NewClientDocumentService(docChatAdapter, sessions, localStore.FileBatchLoader, logger),
		Chat:      NewClientChatService(docChatAdapter, sessions, logger),
	}
}
