package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/models"
)

type memoryDocumentSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.DocumentSession

	logger *logger.Logger
}

// NewMemoryDocumentSessionRepository returns a process-local
// [DocumentSessionRepository]. Sessions do not survive a restart, which
// matches a server whose vector collections live in memory.
func NewMemoryDocumentSessionRepository(logger *logger.Logger) DocumentSessionRepository {
	return &memoryDocumentSessionRepository{
		sessions: make(map[string]models.DocumentSession),
		logger:   logger,
	}
}

func (r *memoryDocumentSessionRepository) CreateDocumentSession(ctx context.Context, session models.DocumentSession) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		log.Error().Str("func", "memoryDocumentSessionRepository.CreateDocumentSession").Str("session_id", session.ID).Msg("session id collision")
		return ErrSessionExists
	}

	session.Documents = slices.Clone(session.Documents)
	r.sessions[session.ID] = session

	return nil
}

func (r *memoryDocumentSessionRepository) TouchDocumentSession(_ context.Context, id string, at time.Time) (models.DocumentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return models.DocumentSession{}, ErrSessionNotFound
	}

	session.LastUsedAt = at
	r.sessions[id] = session

	session.Documents = slices.Clone(session.Documents)
	return session, nil
}

func (r *memoryDocumentSessionRepository) DeleteIdleDocumentSessions(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.LastUsedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.Debug().Str("func", "memoryDocumentSessionRepository.DeleteIdleDocumentSessions").Int("removed", removed).Msg("idle sessions removed")
	}

	return removed, nil
}
