// Package snow is the adapter for the remote ticketing backend. It owns
// field-name translation, URL-parameter construction, pagination-link
// synthesis, and the authenticated transport primitives.
package snow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 10 * time.Second

// Response is the reduced view of a backend reply handed to the engine.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client issues authenticated HTTPS calls against the ticketing backend.
// Safe for concurrent use; every call runs in its own client session
// bounded by the configured timeout. No retries at this layer.
type Client struct {
	baseURL string
	user    string
	pass    string
	timeout time.Duration
}

// NewClient builds a backend client for the configured base URL
// (https://<host>/api/now/table) and basic-auth credentials.
func NewClient(baseURL, user, pass string) *Client {
	return &Client{baseURL: baseURL, user: user, pass: pass, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-call timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("snow: build %s %s: %w", method, path, err)
	}
	req.SetBasicAuth(c.user, c.pass)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Session scoped to this call, released on every exit path.
	session := &http.Client{Timeout: c.timeout}
	resp, err := session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snow: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("snow: read %s %s response: %w", method, path, err)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: payload}, nil
}

// Get issues a GET against the given table path (including query string).
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}
