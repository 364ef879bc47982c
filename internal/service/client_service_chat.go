package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
	"github.com/MKhiriev/go-doc-chat/internal/validators"
	"github.com/MKhiriev/go-doc-chat/models"
)

type clientChatService struct {
	adapter   adapter.DocChatAdapter
	sessions  SessionManager
	validator validators.Validator
	ids       traceIDGenerator

	logger *logger.Logger
}

func NewClientChatService(docChatAdapter adapter.DocChatAdapter, sessions SessionManager, logger *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter:   docChatAdapter,
		sessions:  sessions,
		validator: validators.NewRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *clientChatService) SendMessage(ctx context.Context, query string) (models.ChatResult, error) {
	session, _ := s.sessions.Get()
	req := models.ChatRequest{
		Query:     strings.TrimSpace(query),
		SessionID: session.ID,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatResult{}, mapValidationError(err)
	}

	ctx, log := withTrace(ctx, s.ids, s.logger, "chat")

	resp, err := s.adapter.Chat(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "clientChatService.SendMessage").Msg("chat request failed")
		return models.ChatResult{}, mapAdapterError(err)
	}

	log.Debug().Str("func", "clientChatService.SendMessage").Int("answer_len", len(resp.Answer)).Msg("answer received")
	return models.ChatResult{SessionID: req.SessionID, Answer: resp.Answer}, nil
}
