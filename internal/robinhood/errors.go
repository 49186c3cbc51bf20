package robinhood

import (
	"bytes"
	"fmt"
)

// ConnectionError is a transport-level failure: the request never produced
// an HTTP response, or the response body could not be read.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return fmt.Sprintf("connection error: %v", e.Err) }
func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError is a non-2xx response. Body is the raw response body, usually a
// JSON error document from the service.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, bytes.TrimSpace(e.Body))
}

// ResponseFormatError is a 2xx response whose body did not decode as the
// expected JSON.
type ResponseFormatError struct {
	Err  error
	Body []byte
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %v", e.Err)
}
func (e *ResponseFormatError) Unwrap() error { return e.Err }
