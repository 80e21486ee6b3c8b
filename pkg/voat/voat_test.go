package voat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/govoat/pkg/httpx"
)

// newTestClient spins up a fake API server and returns a client pointed at it.
// Throttling and retries are disabled so tests run fast and hit the handler
// exactly once per call.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{
		WithClientSecret("test-secret"),
		WithRateLimit(0, 0),
		WithRetry(httpx.RetryConfig{}),
	}, opts...)

	return NewClient(srv.URL, "test-key", opts...)
}

// writeEnvelope writes a successful v1 response wrapping data.
func writeEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// writeEnvelopeError writes a failed v1 response with the given error type.
func writeEnvelopeError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"type":    errType,
			"message": message,
		},
	})
}

// writeTokenResponse writes a token endpoint response.
func writeTokenResponse(w http.ResponseWriter, accessToken, refreshToken string, expiresIn int) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
		"expires_in":    expiresIn,
		"scope":         "account",
	})
}

// newTestSession returns a session with a non-expired token so authenticated
// calls do not trigger a refresh.
func newTestSession(c *Client, token string) *Session {
	return c.NewSessionFromAuthData(AuthData{
		AccessToken:  token,
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	})
}
