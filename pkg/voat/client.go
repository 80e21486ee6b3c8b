package voat

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/govoat/pkg/httpx"
)

// DefaultBaseURL is the production API host. Use the preview host to test
// against the preview deployment, or your own host for a self-hosted instance.
const (
	DefaultBaseURL = "https://api.voat.co"
	PreviewBaseURL = "https://preview-api.voat.co"

	apiPrefix = "/api/v1"
)

// defaultRPS is the client-side request budget. The API terms ask clients to
// stay around one request per second.
const (
	defaultRPS   = 1.0
	defaultBurst = 2
)

// Client is an API v1 client. It provides the unauthenticated operations and
// the OAuth2 grants that create authenticated Sessions. Every request carries
// the Voat-ApiKey header; read-only operations work without authentication.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	clientSecret string

	logger      *slog.Logger
	cleanTitles bool

	transportConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, including its transport.
// The default client throttles to the API request budget and retries
// transient failures.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithClientSecret sets the private API key. It is required for the password
// and refresh token grants.
func WithClientSecret(secret string) Option {
	return func(c *Client) { c.clientSecret = secret }
}

// WithLogger attaches a structured logger used for debug-level request logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent overrides the User-Agent header on the default transport.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit overrides the client-side request budget on the default
// transport. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.rps = rps
		c.burst = burst
	}
}

// WithRetry overrides the retry profile on the default transport.
func WithRetry(cfg httpx.RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithoutTitleCleaning disables the automatic title sanitation applied by
// PostSubmission and EditSubmission. The server only accepts printable
// extended-ASCII titles, so disable this only if you sanitize titles yourself.
func WithoutTitleCleaning() Option {
	return func(c *Client) { c.cleanTitles = false }
}

// transport knobs consumed during construction
type transportConfig struct {
	userAgent string
	rps       float64
	burst     int
	retry     httpx.RetryConfig
}

// NewClient creates an API v1 client for the given host. apiKey is the public
// API key issued for your application; it is sent with every request.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		transportConfig: transportConfig{
			userAgent: "govoat/1.0",
			rps:       defaultRPS,
			burst:     defaultBurst,
			retry:     httpx.DefaultRetryConfig(),
		},
		cleanTitles: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.HTTPClient == nil {
		transport := httpx.NewTransport(c.rps, c.burst, c.retry)
		transport.Headers = map[string]string{
			"Accept":     "application/json",
			"User-Agent": c.userAgent,
		}
		c.HTTPClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		}
	}

	return c
}
