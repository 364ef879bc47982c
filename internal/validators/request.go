package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-chat/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFiles targets the file list of an upload batch.
	FieldFiles = "files"

	// FieldFileNames targets the multipart file name of every batch entry.
	FieldFileNames = "file_names"

	// FieldQuery targets the chat query text.
	FieldQuery = "query"

	// FieldSessionID targets the session token of a chat request.
	FieldSessionID = "session_id"
)

// RequestValidator checks upload and chat requests. File types and sizes are
// deliberately not checked; the server is the judge of what it can process.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUploadRequest(_ context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles, FieldFileNames}
	}

	for _, f := range fields {
		switch f {
		case FieldFiles:
			if len(request.Files) == 0 {
				return ErrNoFiles
			}
		case FieldFileNames:
			for i, file := range request.Files {
				if strings.TrimSpace(file.Name) == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyFileName)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateChatRequest(_ context.Context, request models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery, FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(request.Query) == "" {
				return ErrEmptyQuery
			}
		case FieldSessionID:
			if strings.TrimSpace(request.SessionID) == "" {
				return ErrEmptySessionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
