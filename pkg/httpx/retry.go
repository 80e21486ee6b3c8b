package httpx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig defines the retry parameters for the Transport.
type RetryConfig struct {
	// MaxAttempts includes the initial attempt. Values <= 1 disable retries.
	MaxAttempts int

	// InitialInterval is the first backoff delay. Defaults to 500ms.
	InitialInterval time.Duration

	// MaxInterval caps the backoff delay. Defaults to 10s.
	MaxInterval time.Duration

	// MaxRetryAfter caps the Retry-After header value for 429/503 responses.
	// Zero applies no cap.
	MaxRetryAfter time.Duration

	// RetryPost allows retrying POST requests. Disabled by default because
	// POSTs against the API are not idempotent (submissions, comments, votes).
	RetryPost bool
}

// DefaultRetryConfig returns the retry profile used by the SDK clients:
// three attempts with exponential backoff, honoring Retry-After.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		MaxRetryAfter:   30 * time.Second,
	}
}

// retryableStatus reports whether a response status warrants a retry.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusRequestTimeout,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryableMethod reports whether a request method is safe to retry.
func retryableMethod(method string, cfg RetryConfig) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	case http.MethodPost:
		return cfg.RetryPost
	}
	return false
}

// retryAfter parses the Retry-After header (seconds form only). Returns 0 if
// absent or unparseable.
func retryAfter(resp *http.Response, cap time.Duration) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs <= 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if cap > 0 && d > cap {
		d = cap
	}
	return d
}

// doWithRetry executes do, retrying transport errors and retryable status
// codes for retryable methods. The request body is buffered so it can be
// replayed across attempts.
func doWithRetry(
	req *http.Request,
	cfg RetryConfig,
	do func(*http.Request) (*http.Response, error),
) (*http.Response, error) {
	if cfg.MaxAttempts <= 1 || !retryableMethod(req.Method, cfg) {
		return do(req)
	}

	// Buffer the body so retries can replay it.
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	initial := cfg.InitialInterval
	if initial <= 0 {
		initial = 500 * time.Millisecond
	}
	maxInterval := cfg.MaxInterval
	if maxInterval <= 0 {
		maxInterval = 10 * time.Second
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initial
	bo.MaxInterval = maxInterval
	bo.Reset()

	var (
		resp *http.Response
		err  error
	)
	for attempt := 1; ; attempt++ {
		attemptReq := req
		if bodyBytes != nil {
			attemptReq = req.Clone(req.Context())
			attemptReq.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		resp, err = do(attemptReq)
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= cfg.MaxAttempts {
			return resp, err
		}

		wait := bo.NextBackOff()
		if resp != nil {
			if ra := retryAfter(resp, cfg.MaxRetryAfter); ra > wait {
				wait = ra
			}
			// Drain and close so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}
}
