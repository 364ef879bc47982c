package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/mock"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*clientChatService, *mock.MockDocChatAdapter, *mock.MockSessionManager) {
	t.Helper()
	mockAdapter := mock.NewMockDocChatAdapter(ctrl)
	mockSessions := mock.NewMockSessionManager(ctrl)

	svc := NewClientChatService(mockAdapter, mockSessions, logger.Nop()).(*clientChatService)
	return svc, mockAdapter, mockSessions
}

var activeSession = models.Session{Scope: "default", ID: "S1"}

func TestClientChatService_SendMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(activeSession, true)
	mockAdapter.EXPECT().
		Chat(gomock.Any(), models.ChatRequest{Query: "What is this about?", SessionID: "S1"}).
		Return(models.ChatResponse{Answer: "**Cats.**", SessionID: "S1"}, nil)

	got, err := svc.SendMessage(context.Background(), "  What is this about?\n")

	require.NoError(t, err)
	assert.Equal(t, models.ChatResult{SessionID: "S1", Answer: "**Cats.**"}, got)
}

func TestClientChatService_SendMessage_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(activeSession, true)

	_, err := svc.SendMessage(context.Background(), " \t ")

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestClientChatService_SendMessage_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(models.Session{}, false)

	_, err := svc.SendMessage(context.Background(), "hello")

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestClientChatService_SendMessage_ServerErrorKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(activeSession, true)
	mockAdapter.EXPECT().Chat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{}, &adapter.ResponseError{StatusCode: http.StatusInternalServerError, Detail: "LLM quota exceeded"})
	// no Clear or Set: a failed chat leaves the session alone

	_, err := svc.SendMessage(context.Background(), "hello")

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "LLM quota exceeded", Describe(err))
}

func TestClientChatService_SendMessage_NoDetailFallsBackToStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(activeSession, true)
	mockAdapter.EXPECT().Chat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{}, &adapter.ResponseError{StatusCode: http.StatusServiceUnavailable})

	_, err := svc.SendMessage(context.Background(), "hello")

	assert.Equal(t, "http 503: Service Unavailable", Describe(err))
}

func TestClientChatService_SendMessage_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestChatSvc(t, ctrl)

	mockSessions.EXPECT().Get().Return(activeSession, true)
	mockAdapter.EXPECT().Chat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{}, context.DeadlineExceeded)

	_, err := svc.SendMessage(context.Background(), "hello")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
