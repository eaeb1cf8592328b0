// Package gateway is the single chokepoint through which every backend
// call passes. It attaches the bearer credential, applies the fixed
// request timeout, and classifies failures into the three cases callers
// handle: backend error status, network failure, construction failure.
//
// The gateway performs no retries and no response shape validation; a
// successful call decodes the JSON body unchanged into the caller's
// value. On 401 it fires the registered invalidation callback before
// surfacing the error, so a stale credential is cleared no matter what
// the caller does with the failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// apiPrefix is the versioned path prefix shared by all backend routes.
const apiPrefix = "/api/v1"

// defaultTimeout is the fixed ceiling on a single request.
const defaultTimeout = 30 * time.Second

// TokenSource yields the current bearer credential, or empty when no
// session exists.
type TokenSource interface {
	Token() string
}

// Client issues HTTP calls against the marketplace backend.
type Client struct {
	baseURL        string
	timeout        time.Duration
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	userAgent      string
	logger         *slog.Logger
}

// New creates a gateway client. The base URL defaults to the EVCTL_API_URL
// environment variable, falling back to the local development backend.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   os.Getenv("EVCTL_API_URL"),
		timeout:   defaultTimeout,
		userAgent: "evctl",
		logger:    slog.Default(),
	}
	if c.baseURL == "" {
		c.baseURL = "http://localhost:8000"
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// Call issues METHOD <base>/api/v1/<path> with an optional JSON body and
// decodes the JSON response into out when out is non-nil.
//
// Failures are mutually exclusive and checked in order: a backend error
// status yields *APIError (401 additionally invalidates the session), a
// sent-but-unanswered request yields ErrNetwork, and a request that
// could not be built is returned verbatim.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) error {
	url := strings.TrimRight(c.baseURL, "/") + apiPrefix + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Correlation-ID", uuid.NewString())
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Everything Do returns is a transport-level failure: DNS,
		// connection refused, TLS, timeout. The cause is logged but
		// callers get the one fixed message.
		c.logger.Debug("request transport failure",
			"method", method,
			"path", path,
			"error", err,
		)
		return ErrNetwork
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("response body read failure",
			"method", method,
			"path", path,
			"error", err,
		)
		return ErrNetwork
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Detail: extractDetail(respBody)}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Get issues a GET call.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Call(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST call with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT call with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPut, path, body, out)
}

// Timeout returns the configured request ceiling. Commands use it to
// bound their call contexts.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// extractDetail pulls the backend's optional "detail" message out of an
// error response body.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
