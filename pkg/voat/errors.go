package voat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// OAuth2 Error Codes (RFC 6749)
// ============================================================================

const (
	// OAuth2 error codes per RFC 6749, as returned by the token endpoint
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeInvalidClient        = "invalid_client"
	ErrorCodeInvalidGrant         = "invalid_grant"
	ErrorCodeUnauthorizedClient   = "unauthorized_client"
	ErrorCodeUnsupportedGrantType = "unsupported_grant_type"
	ErrorCodeInvalidScope         = "invalid_scope"
	ErrorCodeServerError          = "server_error"
	ErrorCodeAccessDenied         = "access_denied"
)

// ErrNotAuthenticated is returned when an operation requires an authenticated
// session but no tokens are available.
var ErrNotAuthenticated = errors.New("voat: not authenticated")

// ============================================================================
// OAuth2Error - token endpoint failures
// ============================================================================

// OAuth2Error represents a standard OAuth2 error response per RFC 6749.
// It is returned when the oauth/token endpoint rejects a grant, e.g. because
// of an invalid username/password combination or a revoked refresh token.
type OAuth2Error struct {
	// StatusCode is the HTTP status code of the failed response
	StatusCode int `json:"-"`

	// Code is the OAuth2 error code (e.g., "invalid_grant")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *OAuth2Error) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ============================================================================
// APIError - v1 endpoint failures
// ============================================================================

// APIError represents an error returned by a v1 API call. Voat wraps every v1
// response in a {success, error, data} envelope; when success is false the
// error field carries a type and message which are surfaced here.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Type is the Voat error type (e.g., "Unauthorized", "SubverseDisabled")
	Type string

	// Message is the human-readable error message from the server
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("voat: api call failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("voat: %s: %s", e.Type, e.Message)
}

// ============================================================================
// DecodeError - malformed responses
// ============================================================================

// DecodeError is returned when a response body is not the expected JSON.
// This usually happens when there is a connection problem and CloudFlare or
// the server itself returns an HTML error page instead of an API response.
type DecodeError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Snippet holds the start of the offending body for diagnostics
	Snippet string

	// Err is the underlying unmarshal error
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("voat: unexpected non-JSON response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying unmarshal error.
func (e *DecodeError) Unwrap() error { return e.Err }

// ============================================================================
// Error Parsing Helpers
// ============================================================================

const snippetLimit = 256

func bodySnippet(body []byte) string {
	if len(body) > snippetLimit {
		return string(body[:snippetLimit])
	}
	return string(body)
}

// parseTokenError parses a failed token endpoint response into a typed error.
func parseTokenError(resp *http.Response, body []byte) error {
	var errResp struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &OAuth2Error{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: generic error from status code
	return &OAuth2Error{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
