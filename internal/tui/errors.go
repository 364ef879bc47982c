// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/app"
	"github.com/MKhiriev/go-doc-chat/internal/service"
)

// describeError returns the text shown for err. Dial and timeout failures
// get one headline followed by the cause; server details are shown as sent.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *service.ServerError
	if errors.As(err, &serverErr) {
		return service.Describe(err)
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable + ": " + service.Describe(err)
	}

	return service.Describe(err)
}
