package api

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped by every error caused by a payload that does
// not have the documented shape
var ErrMalformedResponse = errors.New("malformed response")

// HTTPStatusError is returned when the remote API answers with a non-2xx status
type HTTPStatusError struct {
	StatusCode int
	Reason     string
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error (%d): %s", e.StatusCode, e.Reason)
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
