package voat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// apiURL builds a complete v1 URL from a path and optional query parameters.
func (c *Client) apiURL(path string, query url.Values) string {
	u := c.BaseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// envelope is the wrapper around every v1 response body.
type envelope struct {
	Success bool            `json:"success"`
	Error   *envelopeError  `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type envelopeError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// do performs an unauthenticated v1 request. body, if non-nil, is JSON
// encoded. The Voat-ApiKey header is attached to every request.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Voat-ApiKey", c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "api request", "method", method, "path", path)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doAuth performs an authenticated v1 request using the session's access
// token, refreshing it first if it has expired.
func (s *Session) doAuth(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Response, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.apiURL(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Voat-ApiKey", s.client.APIKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	if s.client.logger != nil {
		s.client.logger.DebugContext(ctx, "api request", "method", method, "path", path, "authenticated", true)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeEnvelope reads a v1 response, unwraps the {success, error, data}
// envelope and decodes data into target. target may be nil when the caller
// only cares about success.
func decodeEnvelope(resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		// CloudFlare and unhandled server errors return HTML pages.
		return &DecodeError{
			StatusCode: resp.StatusCode,
			Snippet:    bodySnippet(bodyBytes),
			Err:        err,
		}
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Type = env.Error.Type
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if target == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, target); err != nil {
		return &DecodeError{
			StatusCode: resp.StatusCode,
			Snippet:    bodySnippet(env.Data),
			Err:        err,
		}
	}

	return nil
}

// getJSON is the common unwrap for unauthenticated GET endpoints.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target)
}

// getJSON is the common unwrap for authenticated GET endpoints.
func (s *Session) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	resp, err := s.doAuth(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target)
}
