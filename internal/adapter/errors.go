package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures that happened before a response arrived.
	ErrTransport = errors.New("transport error")
	// ErrDecodeResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodeResponse = errors.New("decode response")
)

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	StatusCode int
	// Detail is the server-supplied "detail" text, empty when the body had
	// none.
	Detail string

	kind error
}

// Error returns the detail when the server sent one, otherwise the status
// line, e.g. "http 503: Service Unavailable".
func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "unknown status"
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, text)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
