package service

import (
	"context"

	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
	"github.com/MKhiriev/go-doc-chat/internal/validators"
	"github.com/MKhiriev/go-doc-chat/models"
)

type clientDocumentService struct {
	adapter   adapter.DocChatAdapter
	sessions  SessionManager
	files     store.FileBatchLoader
	validator validators.Validator
	ids       traceIDGenerator

	logger *logger.Logger
}

func NewClientDocumentService(
	docChatAdapter adapter.DocChatAdapter,
	sessions SessionManager,
	files store.FileBatchLoader,
	logger *logger.Logger,
) ClientDocumentService {
	return &clientDocumentService{
		adapter:   docChatAdapter,
		sessions:  sessions,
		files:     files,
		validator: validators.NewRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *clientDocumentService) LoadFiles(ctx context.Context, paths []string) ([]models.UploadFile, error) {
	if len(paths) == 0 {
		return nil, &ValidationError{Err: ErrNoFilesSelected}
	}

	files, err := s.files.Load(ctx, paths)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientDocumentService.LoadFiles").Msg("cannot read selected files")
		return nil, &ValidationError{Err: err}
	}

	return files, nil
}

func (s *clientDocumentService) Upload(ctx context.Context, files []models.UploadFile) (models.UploadResult, error) {
	req := models.UploadRequest{Files: files}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadResult{}, mapValidationError(err)
	}

	ctx, log := withTrace(ctx, s.ids, s.logger, "upload")

	// the previous session is gone as soon as a new batch is on its way
	if err := s.sessions.Clear(ctx); err != nil {
		log.Warn().Err(err).Str("func", "clientDocumentService.Upload").Msg("failed to clear persisted session")
	}

	log.Info().Str("func", "clientDocumentService.Upload").Int("files", len(files)).Msg("uploading documents")
	resp, err := s.adapter.Upload(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "clientDocumentService.Upload").Msg("upload failed")
		return models.UploadResult{}, mapAdapterError(err)
	}
	if resp.SessionID == "" {
		log.Error().Str("func", "clientDocumentService.Upload").Msg("upload response without session id")
		return models.UploadResult{}, &ServerError{Detail: ErrMissingSessionID.Error(), Err: ErrMissingSessionID}
	}

	if err = s.sessions.Set(ctx, resp.SessionID); err != nil {
		log.Warn().Err(err).Str("func", "clientDocumentService.Upload").Msg("session kept in memory only")
	}

	return models.UploadResult{SessionID: resp.SessionID, Answer: resp.Answer}, nil
}
