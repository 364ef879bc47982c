// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the client's local persistence: the SQLite-backed
// session repository and the loader that reads an upload batch from disk.
// It also holds the in-memory session registry of the stub document server.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists at most one session per scope.
type SessionRepository interface {
	// GetSession returns the session stored under scope, or
	// [ErrSessionNotFound] when there is none.
	GetSession(ctx context.Context, scope string) (models.Session, error)

	// SaveSession stores session under session.Scope, replacing any previous
	// row of that scope.
	SaveSession(ctx context.Context, session models.Session) error

	// DeleteSession removes the session of scope. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context, scope string) error
}

// FileBatchLoader reads the files selected for an upload.
type FileBatchLoader interface {
	// Load reads every path into a [models.UploadFile], in order. The first
	// unreadable path aborts the whole batch; the returned error names it.
	Load(ctx context.Context, paths []string) ([]models.UploadFile, error)
}

// DocumentSessionRepository keeps the sessions opened by the stub document
// server. Implementations must be safe for concurrent use.
type DocumentSessionRepository interface {
	// CreateDocumentSession stores a new session. An existing ID is rejected
	// with [ErrSessionExists].
	CreateDocumentSession(ctx context.Context, session models.DocumentSession) error

	// TouchDocumentSession marks the session as used at the given moment and
	// returns its updated record, or [ErrSessionNotFound].
	TouchDocumentSession(ctx context.Context, id string, at time.Time) (models.DocumentSession, error)

	// DeleteIdleDocumentSessions removes every session last used before
	// cutoff and reports how many were removed.
	DeleteIdleDocumentSessions(ctx context.Context, cutoff time.Time) (int, error)
}
