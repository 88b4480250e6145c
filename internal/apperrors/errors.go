package apperrors

import (
	"fmt"
	"net/http"
)

// ErrNetworkFailure is returned when a catalog request could not be sent or no response was received.
type ErrNetworkFailure struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *ErrNetworkFailure) Error() string {
	return fmt.Sprintf("catalog request to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the transport error (DNS, connection refused, timeout, context cancellation).
func (e *ErrNetworkFailure) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrNetworkFailure) Is(target error) bool {
	_, ok := target.(*ErrNetworkFailure)
	return ok
}

// NewNetworkFailure creates a new ErrNetworkFailure.
func NewNetworkFailure(endpoint string, err error) *ErrNetworkFailure {
	return &ErrNetworkFailure{Endpoint: endpoint, Err: err}
}

// ErrUpstream is returned when the catalog answers with a non-success HTTP status.
type ErrUpstream struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("catalog endpoint %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstream) Is(target error) bool {
	_, ok := target.(*ErrUpstream)
	return ok
}

// NotFound reports whether the upstream answered 404.
func (e *ErrUpstream) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NewUpstreamError creates a new ErrUpstream.
func NewUpstreamError(endpoint string, statusCode int) *ErrUpstream {
	return &ErrUpstream{Endpoint: endpoint, StatusCode: statusCode}
}

// ErrShapeMismatch is returned when a catalog response body does not contain the expected fields.
type ErrShapeMismatch struct {
	Endpoint string
	Reason   string
	Err      error
}

// Error implements the error interface.
func (e *ErrShapeMismatch) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response shape from %s: %s: %v", e.Endpoint, e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected response shape from %s: %s", e.Endpoint, e.Reason)
}

// Unwrap exposes the decoding error, if any.
func (e *ErrShapeMismatch) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrShapeMismatch) Is(target error) bool {
	_, ok := target.(*ErrShapeMismatch)
	return ok
}

// NewShapeMismatch creates a new ErrShapeMismatch.
func NewShapeMismatch(endpoint, reason string, err error) *ErrShapeMismatch {
	return &ErrShapeMismatch{Endpoint: endpoint, Reason: reason, Err: err}
}
