// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpDocChatAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpDocChatAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPDocChatAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDocChatAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPDocChatAdapter ────────────────────────────────────────────────────

func TestNewHTTPDocChatAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDocChatAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: "https://docs.example.com/", want: "https://docs.example.com"},
		{raw: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/upload", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		files := req.MultipartForm.File["files"]
		require.Len(t, files, 2)

		assert.Equal(t, "a.pdf", files[0].Filename)
		assert.Equal(t, "application/pdf", files[0].Header.Get("Content-Type"))
		assert.Equal(t, "b.txt", files[1].Filename)
		assert.Equal(t, "application/octet-stream", files[1].Header.Get("Content-Type"))

		f, err := files[0].Open()
		require.NoError(t, err)
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7", string(body))

		assert.Empty(t, req.MultipartForm.Value["session_id"])
		assert.NotEmpty(t, req.Header.Get(utils.TraceIDHeader))

		writeJSON(t, w, http.StatusOK, models.ChatResponse{SessionID: "session_1a2b3c4d", Answer: "Files processed successfully!"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Upload(context.Background(), models.UploadRequest{Files: []models.UploadFile{
		{Name: "a.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")},
		{Name: "b.txt", Content: []byte("plain")},
	}})

	require.NoError(t, err)
	assert.Equal(t, "session_1a2b3c4d", got.SessionID)
	assert.Equal(t, "Files processed successfully!", got.Answer)
}

func TestUpload_ServerDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/upload", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Detail: "bad file"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Upload(context.Background(), models.UploadRequest{Files: []models.UploadFile{{Name: "a.pdf"}}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusInternalServerError, respErr.StatusCode)
	assert.Equal(t, "bad file", respErr.Detail)
	assert.Equal(t, "bad file", err.Error())
}

func TestUpload_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Upload(context.Background(), models.UploadRequest{Files: []models.UploadFile{{Name: "a.pdf"}}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestUpload_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Upload(context.Background(), models.UploadRequest{Files: []models.UploadFile{{Name: "a.pdf"}}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Chat ─────────────────────────────────────────────────────────────────────

func TestChat_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, map[string]string{"query": "What is this about?", "session_id": "S1"}, body)

		writeJSON(t, w, http.StatusOK, models.ChatResponse{Answer: "**Cats.**", SessionID: "S1"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Chat(context.Background(), models.ChatRequest{Query: "What is this about?", SessionID: "S1"})

	require.NoError(t, err)
	assert.Equal(t, "**Cats.**", got.Answer)
	assert.Equal(t, "S1", got.SessionID)
}

func TestChat_TraceIDFromContext(t *testing.T) {
	var traceID string
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, req *http.Request) {
		traceID = req.Header.Get(utils.TraceIDHeader)
		writeJSON(t, w, http.StatusOK, models.ChatResponse{Answer: "ok"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-42")
	_, err := a.Chat(ctx, models.ChatRequest{Query: "q", SessionID: "S1"})

	require.NoError(t, err)
	assert.Equal(t, "trace-42", traceID)
}

func TestChat_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
		wantText   string
	}{
		{
			name:       "bad request with detail",
			status:     http.StatusBadRequest,
			body:       `{"detail":"session_id is required for chat."}`,
			wantErr:    ErrBadRequest,
			wantDetail: "session_id is required for chat.",
			wantText:   "session_id is required for chat.",
		},
		{
			name:       "validation list detail",
			status:     http.StatusUnprocessableEntity,
			body:       `{"detail": [ {"loc": ["body","query"], "msg": "field required"} ]}`,
			wantErr:    ErrUnprocessableEntity,
			wantDetail: `[{"loc":["body","query"],"msg":"field required"}]`,
			wantText:   `[{"loc":["body","query"],"msg":"field required"}]`,
		},
		{
			name:     "not found without body",
			status:   http.StatusNotFound,
			wantErr:  ErrNotFound,
			wantText: "http 404: Not Found",
		},
		{
			name:     "bad gateway html body",
			status:   http.StatusBadGateway,
			body:     "<html>upstream down</html>",
			wantErr:  ErrBadGateway,
			wantText: "http 502: Bad Gateway",
		},
		{
			name:     "unexpected status null detail",
			status:   http.StatusServiceUnavailable,
			body:     `{"detail":null}`,
			wantErr:  ErrUnexpectedStatus,
			wantText: "http 503: Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Chat(context.Background(), models.ChatRequest{Query: "q", SessionID: "S1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.wantDetail, respErr.Detail)
			assert.Equal(t, tt.wantText, err.Error())
		})
	}
}

func TestChat_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Chat(ctx, models.ChatRequest{Query: "q", SessionID: "S1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
