package aeris

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes commonly returned by the Aeris API. Codes prefixed with
// "warn_" accompany success responses and are not failures.
const (
	ErrorCodeInvalidClient   = "invalid_client"
	ErrorCodeInvalidLocation = "invalid_location"
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeWarnNoData      = "warn_no_data"
)

// APIError represents the error object of an Aeris API response envelope.
type APIError struct {
	Code        string `json:"code"        yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsWarning reports whether the error is a warning code, which the API
// returns alongside success responses.
func (e *APIError) IsWarning() bool {
	return strings.HasPrefix(e.Code, "warn_")
}

// HTTPStatusError is returned by typed endpoint calls when the API responds
// with a non-2xx status. The raw HTTP surface never returns it; callers of
// HTTPDoer inspect the status on the response themselves.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("aeris api returned HTTP %d", e.StatusCode)
}

// DeserializationError is returned when a response body does not match the
// expected model shape. Field identifies the offending field path, e.g.
// "AirQuality.loc.lat".
type DeserializationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *DeserializationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid aeris api response: missing required field %s", e.Field)
	}

	return fmt.Sprintf("invalid aeris api response: field %s: %s", e.Field, e.Reason)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrClientIDRequired     = errors.New("client ID is required")
	ErrClientSecretRequired = errors.New("client secret is required")
	ErrLocationRequired     = errors.New("location is required")
	ErrEmptyRoute           = errors.New("route must contain at least one place")
)

// IsInvalidClient checks if the error reports rejected credentials.
func IsInvalidClient(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeInvalidClient
	}

	return false
}

// IsInvalidLocation checks if the error reports an unresolvable place.
func IsInvalidLocation(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeInvalidLocation
	}

	return false
}

// IsNoDataWarning checks if the error is the no-data warning the API
// attaches to successful responses with an empty result set.
func IsNoDataWarning(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeWarnNoData
	}

	return false
}
