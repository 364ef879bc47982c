package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/internal/validators"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/google/uuid"
)

// UploadAnswer is the acknowledgement sent for an accepted upload batch.
const UploadAnswer = "Files processed successfully! You can now start chatting."

const (
	sessionIDPrefix   = "session_"
	sessionIDAttempts = 3
)

var pdfMagic = []byte("%PDF-")

type documentIndexService struct {
	repo      store.DocumentSessionRepository
	validator validators.Validator
	newID     func() string
	now       func() time.Time

	logger *logger.Logger
}

func NewDocumentIndexService(repo store.DocumentSessionRepository, logger *logger.Logger) DocumentIndexService {
	return &documentIndexService{
		repo:      repo,
		validator: validators.NewRequestValidator(),
		newID:     newDocumentSessionID,
		now:       time.Now,
		logger:    logger,
	}
}

// newDocumentSessionID returns "session_" and 8 random hex characters.
func newDocumentSessionID() string {
	u := uuid.New()
	return sessionIDPrefix + hex.EncodeToString(u[:4])
}

func (s *documentIndexService) Index(ctx context.Context, files []models.UploadFile) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.UploadRequest{Files: files}); err != nil {
		return models.ChatResponse{}, &ValidationError{Err: err}
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if !bytes.HasPrefix(file.Content, pdfMagic) {
			log.Warn().Str("func", "documentIndexService.Index").Str("file", file.Name).Msg("rejecting non-PDF upload")
			return models.ChatResponse{}, fmt.Errorf("%s: %w", file.Name, ErrNotPDF)
		}
		names = append(names, file.Name)
	}

	now := s.now()
	for attempt := 1; ; attempt++ {
		session := models.DocumentSession{
			ID:         s.newID(),
			Documents:  names,
			CreatedAt:  now,
			LastUsedAt: now,
		}

		err := s.repo.CreateDocumentSession(ctx, session)
		if err == nil {
			log.Info().Str("func", "documentIndexService.Index").Str("session_id", session.ID).Int("files", len(names)).Msg("session opened")
			return models.ChatResponse{Answer: UploadAnswer, SessionID: session.ID}, nil
		}
		if !errors.Is(err, store.ErrSessionExists) || attempt == sessionIDAttempts {
			return models.ChatResponse{}, fmt.Errorf("open session: %w", err)
		}
	}
}

func (s *documentIndexService) Answer(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, &ValidationError{Err: err}
	}

	session, err := s.repo.TouchDocumentSession(ctx, req.SessionID, s.now())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.ChatResponse{}, fmt.Errorf("%w: %s", ErrUnknownSession, req.SessionID)
		}
		return models.ChatResponse{}, fmt.Errorf("load session: %w", err)
	}

	return models.ChatResponse{Answer: composeAnswer(session, req.Query), SessionID: session.ID}, nil
}

func (s *documentIndexService) EvictIdle(ctx context.Context, ttl time.Duration) (int, error) {
	removed, err := s.repo.DeleteIdleDocumentSessions(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("evict idle sessions: %w", err)
	}
	return removed, nil
}

func composeAnswer(session models.DocumentSession, query string) string {
	var b strings.Builder

	b.WriteString("You asked: _")
	b.WriteString(query)
	b.WriteString("_\n\n")
	b.WriteString("This is a stub answer. The session holds:\n\n")
	for _, name := range session.Documents {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
