// Package polar is a small client for the Polar commerce API. It covers the
// read endpoints the CLI exposes plus webhook endpoint management.
package polar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"nathanbeddoewebdev/polar/internal/retry"
)

const (
	ProductionURL = "https://api.polar.sh"
	SandboxURL    = "https://sandbox-api.polar.sh"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "polar-cli"
)

// Environment selects which Polar deployment the client talks to.
type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

// EnvironmentFor maps the --sandbox flag onto an Environment.
func EnvironmentFor(sandbox bool) Environment {
	if sandbox {
		return Sandbox
	}
	return Production
}

// ServerURL returns the API base URL of the environment.
func (e Environment) ServerURL() string {
	if e == Sandbox {
		return SandboxURL
	}
	return ProductionURL
}

// Client calls the Polar API over HTTP.
//
// Client is the only place requests are retried: GET requests follow the
// retry.Policy set with WithRetryPolicy, and other methods are sent once.
// Callers receive the final error and must not retry again on top of it.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
	retry     retry.Policy
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the organization access token sent as a bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRetryPolicy controls how GET requests are retried.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) { c.retry = p }
}

// NewClient returns a client for the production API unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   ProductionURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		logger:    slog.New(slog.DiscardHandler),
		retry:     retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request and decodes a JSON response into out. GET requests
// are retried on throttling, gateway errors and dropped connections.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &SDKError{Message: "failed to encode request", Err: err}
		}
		payload = data
	}

	if method != http.MethodGet {
		return c.send(ctx, method, path, query, payload, out)
	}
	return retry.Do(ctx, c.retry, retryable, func() error {
		return c.send(ctx, method, path, query, payload, out)
	})
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return &SDKError{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("polar request failed", "method", method, "path", path, "duration", time.Since(start), "error", err)
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("polar: %s %s: %w", method, path, err)
		}
		return newTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}
	c.logger.Debug("polar request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(data),
			retryAfter: resp.Header.Get("Retry-After"),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &SDKError{Message: "failed to decode response", Body: string(data), Err: err}
	}
	return nil
}

// retryable reports whether a failed GET is worth repeating.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return retry.Transient(transportErr.Err)
	}
	return false
}

// RetryAfter parses the Retry-After header as a number of seconds.
func (e *APIError) RetryAfter() (time.Duration, bool) {
	if e.retryAfter == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(e.retryAfter)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}
