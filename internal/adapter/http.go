package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
	"github.com/MKhiriev/go-doc-chat/models"
)

const (
	uploadPath = "/upload"
	chatPath   = "/chat"

	filesField         = "files"
	defaultContentType = "application/octet-stream"
)

type httpDocChatAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPDocChatAdapter constructs the resty implementation of
// [DocChatAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// and applies the optional request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDocChatAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DocChatAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDocChatAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [DocChatAdapter]. No session id is sent: the server
// always starts a new session for an upload.
func (h *httpDocChatAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.ChatResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	for _, file := range req.Files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = defaultContentType
		}
		r.SetMultipartField(filesField, file.Name, contentType, bytes.NewReader(file.Content))
	}

	resp, err := r.Post(uploadPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpDocChatAdapter.Upload").Int("files", len(req.Files)).Msg("upload request failed")
		return models.ChatResponse{}, fmt.Errorf("%w: upload request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpDocChatAdapter.Upload").Int("status", resp.StatusCode()).Msg("upload rejected by server")
		return models.ChatResponse{}, err
	}

	var answer models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &answer); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: upload: %w", ErrDecodeResponse, err)
	}

	h.logger.Debug().Str("func", "httpDocChatAdapter.Upload").Int("files", len(req.Files)).Dur("took", resp.Time()).Msg("upload processed")
	return answer, nil
}

// Chat implements [DocChatAdapter].
func (h *httpDocChatAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(req).
		Post(chatPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpDocChatAdapter.Chat").Msg("chat request failed")
		return models.ChatResponse{}, fmt.Errorf("%w: chat request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpDocChatAdapter.Chat").Int("status", resp.StatusCode()).Msg("chat rejected by server")
		return models.ChatResponse{}, err
	}

	var answer models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &answer); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: chat: %w", ErrDecodeResponse, err)
	}

	return answer, nil
}
