/*
Package voat provides a client SDK for the Voat REST API (v1).

# Overview

The package is organized around two main types:

  - Client: unauthenticated operations and OAuth2 grants
  - Session: authenticated operations with automatic token refresh

Create a Client with your public API key to use the read-only endpoints:

	client := voat.NewClient(voat.DefaultBaseURL, apiKey)

	status, err := client.GetSystemStatus(ctx)
	submissions, err := client.GetSubmissions(ctx, "programming", nil)

Every request carries the Voat-ApiKey header, so an API key is required even
for unauthenticated calls.

# Authentication

Bots authenticating as the owner of the API key use the password grant:

	client := voat.NewClient(voat.DefaultBaseURL, apiKey,
		voat.WithClientSecret(secret),
	)

	session, err := client.AuthenticateWithPassword(ctx, username, password)

Third-party applications, where the account is not the key owner, use the
authorization code flow. The API key must have a redirect URL configured:

	authURL := client.BuildAuthorizeURL("https://app.example.com/callback", state)
	// ... send the user's browser to authURL; on the callback:
	code, state, err := voat.ParseAuthorizationCallback(callbackURL)
	session, err := client.ExchangeAuthorizationCode(ctx, code)

Tokens can be persisted and restored to skip the credential exchange:

	data := session.AuthData()
	// ... store data, later:
	session := client.NewSessionFromAuthData(data)

# Automatic Token Refresh

Sessions refresh their access token transparently shortly before it expires,
using the refresh token. Sessions are safe for concurrent use; a single
refresh is performed even when many goroutines race past the expiry.

# Rate Limiting and Retries

The default HTTP transport throttles requests to the API's request budget and
retries transient failures (429 and 5xx) with exponential backoff, honoring
Retry-After. Both behaviours are configurable:

	client := voat.NewClient(voat.DefaultBaseURL, apiKey,
		voat.WithRateLimit(2, 4),
		voat.WithRetry(httpx.RetryConfig{MaxAttempts: 5}),
	)

# Title Cleaning

The server only accepts printable extended-ASCII submission titles.
PostSubmission and EditSubmission sanitize titles automatically via the
titlex package (Unicode transliteration, whitespace normalization, length
capping). Disable with WithoutTitleCleaning if you sanitize titles yourself.

# Error Handling

The SDK returns typed errors:

  - *OAuth2Error: the token endpoint rejected a grant (RFC 6749 error codes)
  - *APIError: a v1 call returned success=false, carrying the server's
    error type and message
  - *DecodeError: the response body was not the expected JSON, typically an
    HTML error page from CloudFlare or the server

Example:

	_, err := client.GetSubmission(ctx, 12345)
	var apiErr *voat.APIError
	if errors.As(err, &apiErr) {
		fmt.Println("server said:", apiErr.Type, apiErr.Message)
	}
*/
package voat
