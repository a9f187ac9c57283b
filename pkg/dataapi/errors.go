package dataapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure reported by the client. The set is closed;
// every error surfaced by the engine carries exactly one kind.
type ErrorKind string

const (
	ErrorKindValidation         ErrorKind = "validation"
	ErrorKindHTTP               ErrorKind = "http"
	ErrorKindAuthentication     ErrorKind = "authentication"
	ErrorKindAuthorization      ErrorKind = "authorization"
	ErrorKindNotFound           ErrorKind = "not_found"
	ErrorKindConflict           ErrorKind = "conflict"
	ErrorKindRateLimit          ErrorKind = "rate_limit"
	ErrorKindTimeout            ErrorKind = "timeout"
	ErrorKindNetwork            ErrorKind = "network"
	ErrorKindServiceUnavailable ErrorKind = "service_unavailable"
)

// Error is the single error type reported by the DataAPI client. Kind selects
// the failure class; the remaining fields are populated as far as the failure
// allows. StatusCode is 0 when the transport failed before a status line was
// received.
type Error struct {
	Kind       ErrorKind
	Message    string
	Code       string
	StatusCode int
	RequestID  string

	// ResponseBody holds the error response parsed as JSON, when the body
	// was parseable. Otherwise RawBody holds the unparsed bytes.
	ResponseBody map[string]interface{}
	RawBody      string

	// Validation errors
	Field string
	Rules []string

	// Generic HTTP errors
	Method string
	URL    string

	// Not-found errors
	ResourceType string
	ResourceID   string

	// Rate-limit errors: server-requested wait in seconds.
	RetryAfter int

	// Timeout errors: the timeout that was breached, in milliseconds.
	TimeoutMs int

	// Err is the underlying cause (transport errors, JSON errors).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code != "" && e.StatusCode > 0:
		return fmt.Sprintf("%s: %s (code: %s, status: %d)", e.Kind, e.Message, e.Code, e.StatusCode)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the chained cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the engine may repeat the attempt. It is a pure
// function of Kind and StatusCode.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrorKindRateLimit, ErrorKindTimeout, ErrorKindNetwork, ErrorKindServiceUnavailable:
		return true
	case ErrorKindHTTP:
		return e.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// MarshalJSON serialises the error preserving its distinguishing fields.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"kind":    string(e.Kind),
		"message": e.Message,
	}

	if e.Code != "" {
		out["code"] = e.Code
	}

	if e.StatusCode != 0 {
		out["statusCode"] = e.StatusCode
	}

	if e.RequestID != "" {
		out["requestId"] = e.RequestID
	}

	if e.ResponseBody != nil {
		out["responseBody"] = e.ResponseBody
	}

	switch e.Kind {
	case ErrorKindValidation:
		out["field"] = e.Field
		out["rules"] = e.Rules
	case ErrorKindHTTP:
		out["method"] = e.Method
		out["url"] = e.URL
	case ErrorKindNotFound:
		out["resourceType"] = e.ResourceType
		out["resourceId"] = e.ResourceID
	case ErrorKindRateLimit:
		out["retryAfter"] = e.RetryAfter
	case ErrorKindTimeout:
		out["timeoutMs"] = e.TimeoutMs
	}

	out["retryable"] = e.Retryable()

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshaling error record: %w", err)
	}

	return data, nil
}

// KindForStatus maps an HTTP status to an error kind. The mapping is total
// over 4xx/5xx: any status not listed falls through to ErrorKindHTTP.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return ErrorKindValidation
	case http.StatusUnauthorized:
		return ErrorKindAuthentication
	case http.StatusForbidden:
		return ErrorKindAuthorization
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusConflict:
		return ErrorKindConflict
	case http.StatusTooManyRequests:
		return ErrorKindRateLimit
	case http.StatusServiceUnavailable:
		return ErrorKindServiceUnavailable
	default:
		return ErrorKindHTTP
	}
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrRequestRequired     = errors.New("request is required")
	ErrNoMoreItems         = errors.New("no more items")
	ErrInvalidConfig       = errors.New("invalid client configuration")
	ErrNoAuthConfigured    = errors.New("no authentication configured")
	ErrProviderCantRefresh = errors.New("auth provider cannot refresh")
)

// IsKind checks whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return IsKind(err, ErrorKindValidation)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return IsKind(err, ErrorKindAuthentication)
}

// IsAuthorization checks if the error is an authorization error.
func IsAuthorization(err error) bool {
	return IsKind(err, ErrorKindAuthorization)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return IsKind(err, ErrorKindNotFound)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return IsKind(err, ErrorKindConflict)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	return IsKind(err, ErrorKindRateLimit)
}

// IsTimeout checks if the error is a timeout error.
func IsTimeout(err error) bool {
	return IsKind(err, ErrorKindTimeout)
}

// IsNetwork checks if the error is a network error.
func IsNetwork(err error) bool {
	return IsKind(err, ErrorKindNetwork)
}

// IsServiceUnavailable checks if the error is a service unavailable error.
func IsServiceUnavailable(err error) bool {
	return IsKind(err, ErrorKindServiceUnavailable)
}

// IsRetryable checks if the error is a *Error the engine considers retryable.
func IsRetryable(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	return false
}
