package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoFilesSelected  = errors.New("no files selected")
	ErrEmptyQuery       = errors.New("empty query")
	ErrNoActiveSession  = errors.New("no active session")
	ErrMissingSessionID = errors.New("server response carried no session id")
)

// Errors of the stub document server.
var (
	ErrNotPDF         = errors.New("not a PDF document")
	ErrUnknownSession = errors.New("session not found")
)

// ValidationError rejects an operation before anything is sent. The session
// is never touched by a rejected operation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError means no usable response arrived: the connection failed,
// the request was cancelled or the success body could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a response the server sent to reject the operation.
type ServerError struct {
	StatusCode int
	// Detail is the server-supplied explanation, empty if none was sent.
	Detail string
	Err    error
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

func (e *ServerError) Unwrap() error { return e.Err }

// Describe returns the text shown to the user for err: the server detail when
// the server sent one, otherwise the error message itself.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}

	return err.Error()
}
