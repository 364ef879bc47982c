package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/MKhiriev/go-doc-chat/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownSession: http.StatusNotFound,
	store.ErrSessionNotFound:  http.StatusNotFound,
	store.ErrSessionExists:    http.StatusConflict,
}

// statusFromError maps a service error onto a response status. Validation
// failures are 422 as for a malformed body; everything unknown is a 500.
func statusFromError(err error) int {
	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusUnprocessableEntity
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
