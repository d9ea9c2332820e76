package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors matched with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("not found")
	ErrRateLimit      = errors.New("rate limit exceeded")
	// ErrServer covers every 5xx, including STORE_ERROR when the dashboard cannot read login_attempts.
	ErrServer = errors.New("server error")
)

var statusErrors = map[int]error{
	http.StatusBadRequest:      ErrValidation,
	http.StatusUnauthorized:    ErrAuthentication,
	http.StatusNotFound:        ErrNotFound,
	http.StatusTooManyRequests: ErrRateLimit,
}

// APIError is a non-2xx response from the dashboard.
// Code carries the dashboard's machine-readable code (INVALID_PARAMETER, STORE_ERROR, ...) when the body had one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s (status %d)", e.Err, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the request later may succeed
func (e *APIError) Retryable() bool {
	return errors.Is(e.Err, ErrRateLimit) || errors.Is(e.Err, ErrServer)
}

// ValidationError rejects a client configuration or query before any request is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return "validation error: " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newAPIError(statusCode int, code, message string) *APIError {
	err := &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    sanitizeErrorMessage(message),
		Err:        statusErrors[statusCode],
	}
	if statusCode >= http.StatusInternalServerError {
		err.Err = ErrServer
	}
	return err
}

// sanitizeErrorMessage hides server messages that mention credentials
func sanitizeErrorMessage(msg string) string {
	lower := strings.ToLower(msg)
	for _, word := range []string{"password", "secret", "authorization", "credential"} {
		if strings.Contains(lower, word) {
			return "request failed"
		}
	}
	return msg
}
