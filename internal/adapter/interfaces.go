// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// document chat server.
//
// The primary abstraction is [DocChatAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPDocChatAdapter]).
//
// Non-2xx responses are mapped to [*ResponseError], which carries the
// server-supplied detail and unwraps to a status sentinel from errors.go so
// callers can use [errors.Is] (e.g. [ErrBadRequest] for 400). Network
// failures wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/doc_chat_adapter_mock.go -package=mock

// DocChatAdapter defines communication with the document chat server.
type DocChatAdapter interface {
	// Upload sends every file of req as a repeated multipart "files" field to
	// POST /upload. The server processes the batch into a new session and
	// returns its id together with a markdown answer.
	Upload(ctx context.Context, req models.UploadRequest) (models.ChatResponse, error)

	// Chat sends the query bound to req.SessionID as JSON to POST /chat and
	// returns the markdown answer.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}
