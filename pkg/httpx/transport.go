// Package httpx provides the client-side HTTP transport stack shared by the
// Voat API clients: default headers, per-request IDs, client-side rate
// limiting and retry with exponential backoff.
package httpx

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/govoat/pkg/idx"
	"golang.org/x/time/rate"
)

// HeaderRequestID is attached to every outgoing request so individual calls
// can be correlated with server-side logs.
const HeaderRequestID = "X-Request-Id"

// Transport is an http.RoundTripper that throttles, retries and decorates
// outgoing requests. The zero value is not usable; construct with NewTransport.
type Transport struct {
	// Base is the underlying round tripper. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Limiter throttles outgoing requests. Nil disables throttling.
	Limiter *rate.Limiter

	// Retry controls retry behaviour. Zero MaxAttempts disables retries.
	Retry RetryConfig

	// Headers are set on every request unless already present.
	Headers map[string]string
}

// NewTransport builds a Transport with the given requests-per-second budget
// and retry configuration. rps <= 0 disables client-side throttling.
func NewTransport(rps float64, burst int, retry RetryConfig) *Transport {
	t := &Transport{
		Base:  http.DefaultTransport,
		Retry: retry,
	}
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		t.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return t
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// Clone before mutating; the caller may retry with the same request.
	req = req.Clone(req.Context())
	for key, value := range t.Headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, idx.New().String())
	}

	do := func(r *http.Request) (*http.Response, error) {
		if t.Limiter != nil {
			if err := t.Limiter.Wait(r.Context()); err != nil {
				return nil, fmt.Errorf("rate limiter: %w", err)
			}
		}
		return base.RoundTrip(r)
	}

	return doWithRetry(req, t.Retry, do)
}
