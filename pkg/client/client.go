// Package client is a typed API client for the project management server.
// Query results are cached under declarative tags; mutations declare the
// tags they invalidate, which marks dependent queries stale and forces a
// refetch on their next read. Concurrent identical queries are collapsed
// into a single network call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// APIError is the normalized error body returned by the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode"`
	Errors     any    `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
}

// Client talks to the project management API. All reads go through the
// tag-indexed query cache; the zero value is not usable, use NewClient.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *queryCache

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithToken sets an initial bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		cache:   newQueryCache(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs an HTTP request and decodes the JSON response into out.
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// query is the read path: cached value when fresh, otherwise a fetch
// collapsed through singleflight so concurrent identical queries share one
// network call and observe the same value or error. The provides function
// derives the tag set from the fetched result.
func query[T any](ctx context.Context, c *Client, key, path string, provides func(T) []Tag) (T, error) {
	if cached, ok := c.cache.get(key); ok {
		return cached.(T), nil
	}

	value, err, _ := c.cache.group.Do(key, func() (any, error) {
		var out T
		if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
			return nil, err
		}
		if provides != nil {
			c.cache.set(key, out, provides(out))
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return value.(T), nil
}

// mutate is the write path: the request goes straight to the network and,
// on success only, the declared tags are invalidated so dependent queries
// refetch on their next read. No optimistic update is applied.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any, invalidates []Tag) error {
	if err := c.do(ctx, method, path, body, out); err != nil {
		return err
	}

	if len(invalidates) > 0 {
		c.cache.invalidate(invalidates)
	}
	return nil
}
