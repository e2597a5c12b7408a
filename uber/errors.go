package uber

import (
	"errors"
	"fmt"
)

// Common errors returned by the Uber client. Messages for the validation
// errors are part of the public contract and must not change.
var (
	// ErrInvalidScope indicates an authorize URL was requested without scopes.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrMissingGrant indicates Authorize was called without exactly one grant.
	ErrMissingGrant = errors.New("No authorization_code or refresh_token")

	// ErrInvalidParameters indicates a resource call is missing a required parameter.
	ErrInvalidParameters = errors.New("Invalid parameters")

	// ErrInvalidAccessToken indicates a user call has no usable access token.
	ErrInvalidAccessToken = errors.New("Invalid access token")

	// ErrInvalidResponse indicates the API returned a body that is not JSON.
	ErrInvalidResponse = errors.New("invalid response from Uber API")
)

// ScopeError is returned by AuthorizeURL when the scope list is unusable.
type ScopeError struct {
	Reason string
}

// Error implements the error interface
func (e *ScopeError) Error() string {
	return e.Reason
}

// Is reports ErrInvalidScope so callers can match either form.
func (e *ScopeError) Is(target error) bool {
	return target == ErrInvalidScope
}

// APIError represents a non-2xx response from the Uber API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("uber API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the API rejected the call for exceeding its quota
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
