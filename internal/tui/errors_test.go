package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-doc-chat/internal/app"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "connection refused",
			err:  &service.TransportError{Err: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")},
			want: app.MsgServerUnavailable + ": dial tcp 127.0.0.1:8000: connect: connection refused",
		},
		{
			name: "unknown host",
			err:  &service.TransportError{Err: errors.New("lookup docs.internal: no such host")},
			want: app.MsgServerUnavailable + ": lookup docs.internal: no such host",
		},
		{
			name: "timeout",
			err:  &service.TransportError{Err: fmt.Errorf("upload request: %w", context.DeadlineExceeded)},
			want: app.MsgServerUnavailable + ": upload request: context deadline exceeded",
		},
		{
			name: "server detail mentioning a timeout is kept",
			err:  &service.ServerError{StatusCode: http.StatusBadGateway, Detail: "upstream i/o timeout"},
			want: "upstream i/o timeout",
		},
		{
			name: "decode failure",
			err:  &service.TransportError{Err: errors.New("decode response: unexpected end of JSON input")},
			want: "decode response: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}
