package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-chat/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/server_services_mock.go -package=mock

// DocumentIndexService backs the stub document server. It honours the wire
// contract of the real server without processing anything: uploads open a
// session, chat queries get a canned markdown answer naming the documents.
type DocumentIndexService interface {
	// Index accepts an upload batch and opens a session for it. An empty
	// batch or a nameless file is a *ValidationError; a file that is not a
	// PDF fails the batch with [ErrNotPDF].
	Index(ctx context.Context, files []models.UploadFile) (models.ChatResponse, error)

	// Answer replies to req within its session. A blank query or session id
	// is a *ValidationError; an unknown session yields [ErrUnknownSession].
	Answer(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// EvictIdle drops sessions unused for longer than ttl and reports how
	// many were dropped.
	EvictIdle(ctx context.Context, ttl time.Duration) (int, error)
}
