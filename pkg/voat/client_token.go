package voat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenResponse represents the OAuth2 token endpoint response per RFC 6749.
type TokenResponse struct {
	// AccessToken is the bearer token used to authenticate API requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of granted scopes
	Scope string `json:"scope,omitempty"`

	// UserName is the account the tokens were issued for
	UserName string `json:"userName,omitempty"`
}

// AuthenticateWithPassword creates an authenticated session using the
// resource owner password grant. This is the usual path for bots, where the
// account is the owner of the API key and no redirect URL is configured.
// Requires the client secret (see WithClientSecret).
func (c *Client) AuthenticateWithPassword(
	ctx context.Context,
	username, password string,
) (*Session, error) {
	data := url.Values{
		"grant_type":    {"password"},
		"username":      {username},
		"password":      {password},
		"client_id":     {c.APIKey},
		"client_secret": {c.clientSecret},
	}

	tokenResp, err := c.requestToken(ctx, data)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// AuthenticateWithRefreshToken creates an authenticated session from an
// existing refresh token.
func (c *Client) AuthenticateWithRefreshToken(
	ctx context.Context,
	refreshToken string,
) (*Session, error) {
	tokenResp, err := c.RefreshGrant(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// RefreshGrant requests new tokens using a refresh token.
func (c *Client) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.APIKey},
		"client_secret": {c.clientSecret},
	}

	return c.requestToken(ctx, data)
}

// requestToken posts form data to the token endpoint and decodes the result.
func (c *Client) requestToken(ctx context.Context, data url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/oauth/token",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Voat-ApiKey", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseTokenError(resp, bodyBytes)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(bodyBytes, &tokenResp); err != nil {
		return nil, &DecodeError{
			StatusCode: resp.StatusCode,
			Snippet:    bodySnippet(bodyBytes),
			Err:        err,
		}
	}
	if tokenResp.AccessToken == "" {
		return nil, &OAuth2Error{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: "token response missing access_token",
		}
	}

	return &tokenResp, nil
}
