// internal/infrastructure/middleware/middleware_test.go
package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDContext(t *testing.T) {
	// Explicit ID is kept
	ctx := WithRequestID(context.Background(), "test-id-123")
	assert.Equal(t, "test-id-123", GetRequestID(ctx))

	// Empty ID is replaced with a UUID
	ctx = WithRequestID(context.Background(), "")
	_, err := uuid.Parse(GetRequestID(ctx))
	assert.NoError(t, err)

	// No ID at all
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
}

func TestEnsureRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "keep-me")
	assert.Equal(t, "keep-me", GetRequestID(EnsureRequestID(ctx)))

	fresh := EnsureRequestID(context.Background())
	assert.NotEqual(t, "unknown", GetRequestID(fresh))
}

func TestRequestIDTransport(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: RequestIDTransport(nil)}

	ctx := WithRequestID(context.Background(), "test-id-123")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "test-id-123", seen)
	// Original request is untouched
	assert.Empty(t, req.Header.Get(RequestIDHeader))

	// An explicit header wins over the context
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "caller-id")

	resp, err = client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "caller-id", seen)
}

func TestLoggingTransport(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, logger.DebugLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(5*time.Second, log, nil)

	ctx := WithRequestID(context.Background(), "test-id-123")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/rates/A/XYZ/", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	logs := buf.String()
	assert.Contains(t, logs, "HTTP request sent")
	assert.Contains(t, logs, "HTTP response received")
	assert.Contains(t, logs, "test-id-123", "Request ID should be in logs")
	assert.Contains(t, logs, `"status":404`)
}

func TestLoggingTransportError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, logger.DebugLevel)

	failing := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	client := &http.Client{Transport: LoggingTransport(log)(failing)}

	_, err := client.Get("http://example.invalid/")
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "HTTP request failed")
	assert.Contains(t, buf.String(), "connection refused")
}
