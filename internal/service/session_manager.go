package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/models"
)

type sessionManager struct {
	mu      sync.RWMutex
	current models.Session

	scope string
	repo  store.SessionRepository
	now   func() time.Time

	logger *logger.Logger
}

// NewSessionManager returns a [SessionManager] for scope backed by repo.
func NewSessionManager(repo store.SessionRepository, scope string, logger *logger.Logger) SessionManager {
	return &sessionManager{
		scope:  scope,
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (m *sessionManager) Get() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current, m.current.IsActive()
}

func (m *sessionManager) Set(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Session{Scope: m.scope, ID: id, CreatedAt: m.now().UTC()}
	if err := m.repo.SaveSession(ctx, m.current); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.logger.Debug().Str("func", "sessionManager.Set").Str("scope", m.scope).Msg("session stored")
	return nil
}

func (m *sessionManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Session{}
	if err := m.repo.DeleteSession(ctx, m.scope); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}

	return nil
}

func (m *sessionManager) Restore(ctx context.Context) (models.Session, bool, error) {
	session, err := m.repo.GetSession(ctx, m.scope)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("restore session: %w", err)
	}
	if !session.IsActive() {
		return models.Session{}, false, nil
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.logger.Info().Str("func", "sessionManager.Restore").Str("scope", m.scope).Time("created_at", session.CreatedAt).Msg("session restored")
	return session, true, nil
}
