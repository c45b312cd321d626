// Package middleware internal/infrastructure/middleware/middleware.go
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/google/uuid"
)

// Keys for context values
type contextKey string

const (
	requestIDKey contextKey = "request_id"

	// RequestIDHeader is stamped on every outgoing request
	RequestIDHeader = "X-Request-ID"
)

// WithRequestID returns a context carrying id. An empty id is replaced with a new UUID.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// EnsureRequestID returns ctx unchanged if it already carries a request ID,
// otherwise a child context with a fresh one
func EnsureRequestID(ctx context.Context) context.Context {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return ctx
	}
	return WithRequestID(ctx, "")
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls f(req)
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RequestIDTransport copies the context request ID onto the X-Request-ID header
func RequestIDTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(req)
		}

		// RoundTrippers must not modify the caller's request
		clone := req.Clone(req.Context())
		clone.Header.Set(RequestIDHeader, GetRequestID(req.Context()))
		return next.RoundTrip(clone)
	})
}

// LoggingTransport logs every outgoing request and its outcome
func LoggingTransport(log logger.Logger) func(http.RoundTripper) http.RoundTripper {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			startTime := time.Now()
			requestID := GetRequestID(req.Context())

			log.Debug("HTTP request sent", map[string]interface{}{
				"request_id": requestID,
				"method":     req.Method,
				"url":        req.URL.String(),
			})

			resp, err := next.RoundTrip(req)
			duration := time.Since(startTime)

			if err != nil {
				log.Debug("HTTP request failed", map[string]interface{}{
					"request_id":  requestID,
					"method":      req.Method,
					"url":         req.URL.String(),
					"duration_ms": duration.Milliseconds(),
					"error":       err.Error(),
				})
				return nil, err
			}

			log.Debug("HTTP response received", map[string]interface{}{
				"request_id":     requestID,
				"method":         req.Method,
				"url":            req.URL.String(),
				"status":         resp.StatusCode,
				"duration_ms":    duration.Milliseconds(),
				"content_type":   resp.Header.Get("Content-Type"),
				"content_length": resp.ContentLength,
			})

			return resp, nil
		})
	}
}

// NewHTTPClient builds the client used by the API adapters: request IDs are
// stamped first, then the request is logged, then sent through base
func NewHTTPClient(timeout time.Duration, log logger.Logger, base http.RoundTripper) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: RequestIDTransport(LoggingTransport(log)(base)),
	}
}
