package errors

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Domain errors
var (
	// Range resolution
	ErrInvalidRangeLabel = errors.New("invalid range label")
	ErrInvalidInterval   = errors.New("invalid interval: from is after to")

	// Dashboard backend
	ErrNetwork = errors.New("dashboard backend unreachable")
	ErrServer  = errors.New("dashboard backend returned an error status")
	ErrDecode  = errors.New("dashboard backend returned a malformed body")

	// Generic
	ErrBadRequest = errors.New("bad request")
)

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response.
type NetworkError struct {
	Op  string // Operation name, e.g. "most-used-domains"
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: POST %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ServerError reports a non-success HTTP status from the backend.
type ServerError struct {
	Op         string
	StatusCode int
	Body       string // Truncated response body, may be empty
}

func (e *ServerError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Error constructors for common cases
func NewNetworkError(op, url string, err error) *NetworkError {
	return &NetworkError{Op: op, URL: url, Err: err}
}

func NewServerError(op string, statusCode int, body string) *ServerError {
	return &ServerError{Op: op, StatusCode: statusCode, Body: body}
}

func NewDecodeError(op string, err error) *DecodeError {
	return &DecodeError{Op: op, Err: err}
}

// ValidationErrors holds multiple field validation errors
type ValidationErrors struct {
	Errors map[string][]string `json:"errors"`
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make(map[string][]string),
	}
}

func (v *ValidationErrors) Add(field, message string) {
	v.Errors[field] = append(v.Errors[field], message)
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationErrors) Error() string {
	fields := make([]string, 0, len(v.Errors))
	for field, msgs := range v.Errors {
		fields = append(fields, field+": "+strings.Join(msgs, "; "))
	}
	slices.Sort(fields)
	return fmt.Sprintf("validation failed: %d field(s) have errors (%s)", len(v.Errors), strings.Join(fields, ", "))
}
