package llm

import (
	"errors"
)

// Error represents a provider-neutral LLM error.
type Error struct {
	Type        ErrorType
	Message     string
	StatusCode  int    // HTTP status for upstream errors
	Body        string // Raw upstream response body
	ProviderErr error  // Original provider-specific error
}

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeUpstream      ErrorType = "upstream"
	ErrorTypeNetwork       ErrorType = "network"
	ErrorTypeDecode        ErrorType = "decode"
)

// Error implements the error interface.
// Upstream errors report the raw response body so provider messages reach the user verbatim.
func (e *Error) Error() string {
	if e.Type == ErrorTypeUpstream {
		return e.Body
	}
	if e.ProviderErr != nil {
		return e.Message + ": " + e.ProviderErr.Error()
	}
	return e.Message
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.ProviderErr
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeConfiguration
	}
	return false
}

// IsUpstreamError checks if an error is a non-success upstream response.
func IsUpstreamError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeUpstream
	}
	return false
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(message string) *Error {
	return &Error{
		Type:    ErrorTypeConfiguration,
		Message: message,
	}
}

// NewInvalidRequestError creates a configuration error for a request the
// provider SDK refused to send, such as one naming a model the endpoint
// does not serve.
func NewInvalidRequestError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeConfiguration,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewUpstreamError creates a new upstream error carrying the raw response body.
func NewUpstreamError(statusCode int, body string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeUpstream,
		Message:     "upstream returned non-success status",
		StatusCode:  statusCode,
		Body:        body,
		ProviderErr: providerErr,
	}
}

// NewNetworkError creates a new network error.
func NewNetworkError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeNetwork,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewDecodeError creates a new decode error.
func NewDecodeError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeDecode,
		Message:     message,
		ProviderErr: providerErr,
	}
}
