// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadFile is one file of an upload batch, already read into memory.
type UploadFile struct {
	// Name is the base file name sent as the multipart file name.
	Name string

	// ContentType is the MIME type of Content
	// (e.g. "application/pdf"). Empty means application/octet-stream.
	ContentType string

	// Content holds the raw file bytes.
	Content []byte
}

// UploadRequest is a batch of files sent to POST /upload as repeated
// multipart "files" fields. No session id is ever attached: every upload
// creates a new server-side session.
type UploadRequest struct {
	// Files must contain at least one entry.
	Files []UploadFile
}

// UploadResult is returned by a successful upload.
type UploadResult struct {
	// SessionID is the newly issued session token.
	SessionID string

	// Answer is the server acknowledgement (markdown).
	Answer string
}
