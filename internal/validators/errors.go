package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFiles        = errors.New("upload batch cannot be empty")
	ErrEmptyFileName  = errors.New("file name is required")
	ErrEmptyQuery     = errors.New("query is required")
	ErrEmptySessionID = errors.New("session id is required")
)
