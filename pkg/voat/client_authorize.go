package voat

import (
	"context"
	"fmt"
	"net/url"
)

// Authorization code flow for third-party applications, where the account
// logging in is not the owner of the API key. The key must have a redirect
// URL configured; the user's browser is sent to the authorize URL and comes
// back to the redirect URL carrying the authorization code.

// BuildAuthorizeURL constructs the OAuth2 authorization URL. Redirect the
// user's browser here to begin the flow. state is an opaque value echoed back
// on the callback; set it to guard against CSRF.
func (c *Client) BuildAuthorizeURL(redirectURI, state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.APIKey)
	params.Set("scope", "account")
	if redirectURI != "" {
		params.Set("redirect_uri", redirectURI)
	}
	if state != "" {
		params.Set("state", state)
	}

	return fmt.Sprintf("%s/oauth/authorize?%s", c.BaseURL, params.Encode())
}

// ParseAuthorizationCallback extracts the authorization code and state from
// the callback URL the user was redirected to. Returns an *OAuth2Error if the
// server reported an error on the callback.
func ParseAuthorizationCallback(callbackURL string) (code, state string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse callback URL: %w", err)
	}

	q := u.Query()
	if errCode := q.Get("error"); errCode != "" {
		return "", "", &OAuth2Error{
			Code:        errCode,
			Description: q.Get("error_description"),
		}
	}

	code = q.Get("code")
	if code == "" {
		return "", "", fmt.Errorf("callback URL missing authorization code")
	}

	return code, q.Get("state"), nil
}

// ExchangeAuthorizationCode exchanges an authorization code for tokens and
// returns an authenticated session. Requires the client secret.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code string) (*Session, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {c.APIKey},
		"client_secret": {c.clientSecret},
	}

	tokenResp, err := c.requestToken(ctx, data)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}
