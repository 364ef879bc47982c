package handler

import (
	"testing"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/mock"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ServerServices{Index: mock.NewMockDocumentIndexService(ctrl)}

	tests := []struct {
		name     string
		services *service.ServerServices
		cfg      config.Server
		wantErr  error
	}{
		{name: "http handler", services: services, cfg: config.Server{HTTPAddress: ":8000"}},
		{name: "no address", services: services, cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
		{name: "no services", services: nil, cfg: config.Server{HTTPAddress: ":8000"}, wantErr: errNoServices},
		{name: "no index service", services: &service.ServerServices{}, cfg: config.Server{HTTPAddress: ":8000"}, wantErr: errNoServices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, handlers.HTTP)
			assert.NotNil(t, handlers.HTTP.Init())
		})
	}
}
