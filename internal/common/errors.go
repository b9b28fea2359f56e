package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")

	// ErrGatewayUnavailable covers every way the upstream can fail us before
	// giving a usable answer: unreachable, timed out, non-2xx, unparseable.
	ErrGatewayUnavailable = errors.New("upstream gateway unavailable")
	ErrProfileNotFound    = fmt.Errorf("profile %w", ErrNotFound)
)

// UpstreamError is a classified failure of the outbound profile call.
// Kind is ErrGatewayUnavailable or ErrProfileNotFound.
type UpstreamError struct {
	Kind       error
	StatusCode int // upstream HTTP status, 0 when no response was received
	Detail     string
	Cause      error
}

func (e *UpstreamError) Error() string {
	return e.Detail
}

func (e *UpstreamError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// GatewayError builds an ErrGatewayUnavailable failure. statusCode is 0 for
// transport and decode failures.
func GatewayError(statusCode int, cause error, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{
		Kind:       ErrGatewayUnavailable,
		StatusCode: statusCode,
		Detail:     fmt.Sprintf(format, args...),
		Cause:      cause,
	}
}

func NotFoundError(detail string) *UpstreamError {
	return &UpstreamError{Kind: ErrProfileNotFound, Detail: detail}
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrGatewayUnavailable) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
