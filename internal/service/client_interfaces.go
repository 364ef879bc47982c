package service

import (
	"context"

	"github.com/MKhiriev/go-doc-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionManager holds the session token of this client and keeps the
// persisted copy in step with it. It is safe for concurrent use: the UI
// issues requests from command goroutines.
type SessionManager interface {
	// Get returns the current session and whether one is held.
	Get() (models.Session, bool)

	// Set makes id the current session and persists it. The in-memory session
	// is updated even when persisting fails; the error is still returned.
	Set(ctx context.Context, id string) error

	// Clear drops the current session from memory and from the store.
	Clear(ctx context.Context) error

	// Restore loads the persisted session of this client's scope into memory.
	// It reports false, without error, when nothing was stored.
	Restore(ctx context.Context) (models.Session, bool, error)
}

// ClientDocumentService uploads document batches and opens sessions.
type ClientDocumentService interface {
	// Upload sends files as one batch. An empty batch is rejected with a
	// *ValidationError before anything else happens. Otherwise the current
	// session is cleared first; on success the new session is stored.
	// Failures are *ServerError or *TransportError and leave the client
	// without a session.
	Upload(ctx context.Context, files []models.UploadFile) (models.UploadResult, error)

	// LoadFiles reads the files at paths into an upload batch. No paths, or a
	// path that cannot be read, yields a *ValidationError. Nothing is sent and
	// the session is left as it was.
	LoadFiles(ctx context.Context, paths []string) ([]models.UploadFile, error)
}

// ClientChatService exchanges chat messages within the current session.
type ClientChatService interface {
	// SendMessage sends the trimmed query under the current session. An empty
	// query or a missing session yields a *ValidationError and no request.
	// A failed request never invalidates the session.
	SendMessage(ctx context.Context, query string) (models.ChatResult, error)
}
