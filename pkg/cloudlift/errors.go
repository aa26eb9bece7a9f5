package cloudlift

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrorKind discriminates the closed set of failure classes the SDK can
// produce. Every error returned by the SDK is an *Error carrying exactly one
// of these kinds.
type ErrorKind string

const (
	// ErrorKindValidation marks a missing or malformed argument, detected
	// before any network activity.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindAPI marks a response received with a non-2xx status.
	ErrorKindAPI ErrorKind = "api"

	// ErrorKindTimeout marks a request aborted because the configured
	// timeout elapsed.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindTransport marks any other failure to complete the round trip
	// (DNS, connection refused, TLS, reset).
	ErrorKindTransport ErrorKind = "transport"
)

// Error is the single error type produced by the SDK. Callers can catch any
// SDK error with one errors.As and then switch on Kind, or use the Is*
// helpers for the common cases.
type Error struct {
	Kind ErrorKind

	// Message is a human-readable description of the failure.
	Message string

	// Path is the endpoint path of the failed operation. Empty for
	// validation errors, which never reach the network.
	Path string

	// StatusCode is the HTTP status of the response. Set only for api errors.
	StatusCode int

	// Body is the verbatim response body. Set only for api errors.
	Body json.RawMessage

	// Timeout is the configured timeout that elapsed. Set only for timeout
	// errors.
	Timeout time.Duration

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindAPI:
		return fmt.Sprintf("api error: status %d on %s: %s", e.StatusCode, e.Path, e.Message)
	case ErrorKindTimeout:
		return fmt.Sprintf("timeout error: %s exceeded %s", e.Path, e.Timeout)
	case ErrorKindTransport:
		return fmt.Sprintf("transport error: %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationError creates a validation *Error.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrorKindValidation, Message: message}
}

// NewAPIError creates an api *Error from a non-2xx response.
func NewAPIError(statusCode int, body []byte, path string) *Error {
	return &Error{
		Kind:       ErrorKindAPI,
		Message:    apiErrorMessage(body),
		Path:       path,
		StatusCode: statusCode,
		Body:       json.RawMessage(body),
	}
}

// NewDecodeError creates an api *Error for a success response whose body
// could not be decoded into the documented payload. The status and verbatim
// body are preserved so callers can inspect what the platform sent.
func NewDecodeError(statusCode int, body []byte, path string, cause error) *Error {
	return &Error{
		Kind:       ErrorKindAPI,
		Message:    fmt.Sprintf("malformed response body: %v", cause),
		Path:       path,
		StatusCode: statusCode,
		Body:       json.RawMessage(body),
		cause:      cause,
	}
}

// NewTimeoutError creates a timeout *Error.
func NewTimeoutError(path string, timeout time.Duration, cause error) *Error {
	return &Error{
		Kind:    ErrorKindTimeout,
		Message: fmt.Sprintf("request timed out after %s", timeout),
		Path:    path,
		Timeout: timeout,
		cause:   cause,
	}
}

// NewTransportError creates a transport *Error.
func NewTransportError(path string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindTransport,
		Message: cause.Error(),
		Path:    path,
		cause:   cause,
	}
}

// apiErrorMessage extracts a server-provided message from an error body when
// one is present, falling back to the raw body text.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}

		if payload.Error != "" {
			return payload.Error
		}
	}

	return string(body)
}

// IsValidation checks if the error is an SDK validation error.
func IsValidation(err error) bool {
	return hasKind(err, ErrorKindValidation)
}

// IsAPI checks if the error is an SDK api error.
func IsAPI(err error) bool {
	return hasKind(err, ErrorKindAPI)
}

// IsTimeout checks if the error is an SDK timeout error.
func IsTimeout(err error) bool {
	return hasKind(err, ErrorKindTimeout)
}

// IsTransport checks if the error is an SDK transport error.
func IsTransport(err error) bool {
	return hasKind(err, ErrorKindTransport)
}

// AsError returns the SDK error wrapped in err, or nil when err did not
// originate from the SDK.
func AsError(err error) *Error {
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}

	return nil
}

func hasKind(err error, kind ErrorKind) bool {
	sdkErr := AsError(err)

	return sdkErr != nil && sdkErr.Kind == kind
}
