// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// error: a non-2xx answer becomes a *ServerError, everything else a
// *TransportError.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return &ServerError{
			StatusCode: respErr.StatusCode,
			Detail:     respErr.Detail,
			Err:        err,
		}
	}

	return &TransportError{Err: err}
}

// mapValidationError translates a validator error into a *ValidationError
// carrying the matching service sentinel.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrNoFiles):
		return &ValidationError{Err: ErrNoFilesSelected}
	case errors.Is(err, validators.ErrEmptyQuery):
		return &ValidationError{Err: ErrEmptyQuery}
	case errors.Is(err, validators.ErrEmptySessionID):
		return &ValidationError{Err: ErrNoActiveSession}
	}

	return &ValidationError{Err: err}
}
