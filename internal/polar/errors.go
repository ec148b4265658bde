package polar

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Sentinel errors for status-based classification. An *APIError unwraps to
// one of these when its status code matches, so callers can write
//
//	if errors.Is(err, polar.ErrNotFound) { ... }
//
// without inspecting status codes.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = errors.New("conflict")
)

// APIError is returned for any response with a non-2xx status code. Body
// holds the raw response payload, which may be empty, plain text or JSON.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string

	retryAfter string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("polar: %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap maps the status code onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}

// SDKError is a client-side protocol failure: a request that could not be
// encoded or a response that could not be decoded. Body holds the raw
// response payload when one was received.
type SDKError struct {
	Message string
	Body    string
	Err     error
}

func (e *SDKError) Error() string {
	if e.Err == nil {
		return "polar: " + e.Message
	}
	return fmt.Sprintf("polar: %s: %v", e.Message, e.Err)
}

func (e *SDKError) Unwrap() error {
	return e.Err
}

// TransportError reports a request that never produced a response, either
// because the connection failed or because it timed out.
type TransportError struct {
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("polar: request timed out: %v", e.Err)
	}
	return fmt.Sprintf("polar: connection failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newTransportError wraps an error returned by http.Client.Do.
func newTransportError(err error) *TransportError {
	return &TransportError{Timeout: IsTimeout(err), Err: err}
}

// IsTimeout reports whether err is a deadline or network timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// FieldError is a single validation failure. Loc is the path to the
// offending field, e.g. ["query", "limit"].
type FieldError struct {
	Loc []string
	Msg string
}

// ValidationError is returned when request parameters fail client-side
// validation. No request is sent.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "polar: invalid request: " + strings.Join(parts, "; ")
}

// add records a single field failure.
func (e *ValidationError) add(msg string, loc ...string) {
	e.Errors = append(e.Errors, FieldError{Loc: loc, Msg: msg})
}

// errOrNil returns e when at least one failure was recorded.
func (e *ValidationError) errOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
