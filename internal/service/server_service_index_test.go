package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/mock"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/internal/validators"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var indexNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

var indexBatch = []models.UploadFile{
	{Name: "a.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7 a")},
	{Name: "b.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 b")},
}

func newTestIndexSvc(t *testing.T, ids ...string) (*documentIndexService, *mock.MockDocumentSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentSessionRepository(ctrl)

	svc := NewDocumentIndexService(repo, logger.Nop()).(*documentIndexService)
	svc.now = func() time.Time { return indexNow }
	if len(ids) > 0 {
		next := 0
		svc.newID = func() string {
			id := ids[next%len(ids)]
			next++
			return id
		}
	}
	return svc, repo
}

// ── Index ────────────────────────────────────────────────────────────────────

func TestDocumentIndexService_Index_Success(t *testing.T) {
	svc, repo := newTestIndexSvc(t, "session_0a1b2c3d")

	repo.EXPECT().CreateDocumentSession(gomock.Any(), models.DocumentSession{
		ID:         "session_0a1b2c3d",
		Documents:  []string{"a.pdf", "b.pdf"},
		CreatedAt:  indexNow,
		LastUsedAt: indexNow,
	}).Return(nil)

	got, err := svc.Index(context.Background(), indexBatch)

	require.NoError(t, err)
	assert.Equal(t, models.ChatResponse{Answer: UploadAnswer, SessionID: "session_0a1b2c3d"}, got)
}

func TestDocumentIndexService_Index_RetriesOnCollision(t *testing.T) {
	svc, repo := newTestIndexSvc(t, "session_taken", "session_free")

	gomock.InOrder(
		repo.EXPECT().CreateDocumentSession(gomock.Any(), gomock.Any()).Return(store.ErrSessionExists),
		repo.EXPECT().CreateDocumentSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	got, err := svc.Index(context.Background(), indexBatch)

	require.NoError(t, err)
	assert.Equal(t, "session_free", got.SessionID)
}

func TestDocumentIndexService_Index_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, repo := newTestIndexSvc(t, "session_taken")

	repo.EXPECT().CreateDocumentSession(gomock.Any(), gomock.Any()).Return(store.ErrSessionExists).Times(sessionIDAttempts)

	_, err := svc.Index(context.Background(), indexBatch)

	assert.ErrorIs(t, err, store.ErrSessionExists)
}

func TestDocumentIndexService_Index_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		files      []models.UploadFile
		wantErr    error
		validation bool
	}{
		{name: "empty batch", files: nil, wantErr: validators.ErrNoFiles, validation: true},
		{
			name:       "nameless file",
			files:      []models.UploadFile{{Name: " ", Content: []byte("%PDF-1.7")}},
			wantErr:    validators.ErrEmptyFileName,
			validation: true,
		},
		{
			name: "not a pdf",
			files: []models.UploadFile{
				{Name: "a.pdf", Content: []byte("%PDF-1.7")},
				{Name: "notes.txt", Content: []byte("plain text")},
			},
			wantErr: ErrNotPDF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestIndexSvc(t)

			// no CreateDocumentSession expected
			_, err := svc.Index(context.Background(), tt.files)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var valErr *ValidationError
			assert.Equal(t, tt.validation, errors.As(err, &valErr))
		})
	}
}

func TestDocumentIndexService_Index_NotPDFNamesFile(t *testing.T) {
	svc, _ := newTestIndexSvc(t)

	_, err := svc.Index(context.Background(), []models.UploadFile{{Name: "notes.txt", Content: []byte("hello")}})

	assert.EqualError(t, err, "notes.txt: not a PDF document")
}

// ── Answer ───────────────────────────────────────────────────────────────────

func TestDocumentIndexService_Answer_Success(t *testing.T) {
	svc, repo := newTestIndexSvc(t)

	repo.EXPECT().TouchDocumentSession(gomock.Any(), "session_1", indexNow).Return(models.DocumentSession{
		ID:        "session_1",
		Documents: []string{"a.pdf", "b.pdf"},
	}, nil)

	got, err := svc.Answer(context.Background(), models.ChatRequest{Query: "  what is inside?  ", SessionID: "session_1"})

	require.NoError(t, err)
	assert.Equal(t, "session_1", got.SessionID)
	assert.Equal(t, "You asked: _what is inside?_\n\nThis is a stub answer. The session holds:\n\n- a.pdf\n- b.pdf", got.Answer)
}

func TestDocumentIndexService_Answer_Errors(t *testing.T) {
	t.Run("blank query", func(t *testing.T) {
		svc, _ := newTestIndexSvc(t)

		_, err := svc.Answer(context.Background(), models.ChatRequest{Query: "  ", SessionID: "session_1"})

		var valErr *ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.ErrorIs(t, err, validators.ErrEmptyQuery)
	})

	t.Run("missing session id", func(t *testing.T) {
		svc, _ := newTestIndexSvc(t)

		_, err := svc.Answer(context.Background(), models.ChatRequest{Query: "hi"})

		assert.ErrorIs(t, err, validators.ErrEmptySessionID)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, repo := newTestIndexSvc(t)
		repo.EXPECT().TouchDocumentSession(gomock.Any(), "session_gone", indexNow).
			Return(models.DocumentSession{}, store.ErrSessionNotFound)

		_, err := svc.Answer(context.Background(), models.ChatRequest{Query: "hi", SessionID: "session_gone"})

		assert.ErrorIs(t, err, ErrUnknownSession)
		assert.EqualError(t, err, "session not found: session_gone")
	})
}

// ── EvictIdle ────────────────────────────────────────────────────────────────

func TestDocumentIndexService_EvictIdle(t *testing.T) {
	svc, repo := newTestIndexSvc(t)
	repo.EXPECT().DeleteIdleDocumentSessions(gomock.Any(), indexNow.Add(-time.Hour)).Return(2, nil)

	removed, err := svc.EvictIdle(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestNewDocumentSessionID(t *testing.T) {
	id := newDocumentSessionID()

	assert.Regexp(t, `^session_[0-9a-f]{8}$`, id)
	assert.NotEqual(t, id, newDocumentSessionID())
}
