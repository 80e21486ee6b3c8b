package voat

import (
	"context"
	"sync"
	"time"
)

// expiryBuffer is subtracted from the token lifetime so sessions refresh
// shortly before the server-side expiry.
const expiryBuffer = 30 * time.Second

// Session represents an authenticated session with automatic token refresh.
// All Session methods handle token expiration transparently; you never need
// to refresh manually. Sessions are safe for concurrent use.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	scope        string
}

// AuthData is the portable form of a session's tokens. Persist it after a
// successful login and restore it later with NewSessionFromAuthData to skip
// the credential exchange.
type AuthData struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope,omitempty"`
}

// newSession creates an authenticated session from a token endpoint response.
func newSession(client *Client, tokenResp *TokenResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	expiresAt = expiresAt.Add(-expiryBuffer)

	return &Session{
		client:       client,
		accessToken:  tokenResp.AccessToken,
		refreshToken: tokenResp.RefreshToken,
		expiresAt:    expiresAt,
		scope:        tokenResp.Scope,
	}
}

// NewSessionFromAuthData restores an authenticated session from previously
// saved tokens. The session still auto-refreshes when the access token
// expires. If the saved data carries no expiry, it is recovered from the
// access token's claims; tokens whose expiry cannot be recovered are treated
// as expired and refreshed on first use.
func (c *Client) NewSessionFromAuthData(data AuthData) *Session {
	if data.ExpiresAt.IsZero() && data.AccessToken != "" {
		if claims, err := DecodeAccessToken(data.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
			data.ExpiresAt = claims.ExpiresAt.Add(-expiryBuffer)
		}
	}

	return &Session{
		client:       c,
		accessToken:  data.AccessToken,
		refreshToken: data.RefreshToken,
		expiresAt:    data.ExpiresAt,
		scope:        data.Scope,
	}
}

// AuthData returns the session's current tokens for persistence.
func (s *Session) AuthData() AuthData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return AuthData{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		ExpiresAt:    s.expiresAt,
		Scope:        s.scope,
	}
}

// Client returns the underlying API client.
func (s *Session) Client() *Client { return s.client }

// AccessToken returns the current access token without checking expiration.
// Prefer the Session methods, which handle refresh automatically.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Refresh forces a token refresh regardless of expiry and returns the new
// auth data.
func (s *Session) Refresh(ctx context.Context) (AuthData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		return AuthData{}, err
	}

	return AuthData{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		ExpiresAt:    s.expiresAt,
		Scope:        s.scope,
	}, nil
}

// getValidToken returns a valid access token, refreshing if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock; another goroutine may
	// have refreshed already.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}

	return s.accessToken, nil
}

// refreshLocked exchanges the refresh token for new tokens. Callers must hold
// the write lock.
func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrNotAuthenticated
	}

	tokenResp, err := s.client.RefreshGrant(ctx, s.refreshToken)
	if err != nil {
		return err
	}

	s.accessToken = tokenResp.AccessToken
	if tokenResp.RefreshToken != "" {
		s.refreshToken = tokenResp.RefreshToken
	}
	s.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expiryBuffer)
	if tokenResp.Scope != "" {
		s.scope = tokenResp.Scope
	}

	return nil
}
