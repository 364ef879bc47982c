package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8000", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8000", client.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://localhost", 5*time.Second)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)

	noTimeout := NewHTTPClient("http://localhost", 0)
	assert.Zero(t, noTimeout.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_TraceIDHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(TraceIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	// generated when the context carries none
	_, err := client.R().SetContext(context.Background()).Get("/")
	require.NoError(t, err)

	// propagated from the context
	_, err = client.R().SetContext(WithTraceID(context.Background(), "trace-1")).Get("/")
	require.NoError(t, err)

	// an explicit header is left alone
	_, err = client.R().SetHeader(TraceIDHeader, "explicit").Get("/")
	require.NoError(t, err)

	require.Len(t, got, 3)
	_, parseErr := uuid.Parse(got[0])
	assert.NoError(t, parseErr)
	assert.Equal(t, "trace-1", got[1])
	assert.Equal(t, "explicit", got[2])
}
