package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is where the todos API is served during local development.
	DefaultBaseURL = "http://localhost:5173"

	// CollectionPath is the REST collection for todos.
	CollectionPath = "/api/todos"
)

// Client is the todos API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client for the server at baseURL.
// A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an HTTP request and decodes the JSON response.
// Every failure is reported as a *FetchError for op.
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return newFetchError(op, fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return newFetchError(op, fmt.Errorf("failed to create request: %w", err))
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newFetchError(op, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newFetchError(op, fmt.Errorf("failed to read response body: %w", err))
	}

	// Anything outside 2xx is a failure, including redirects the client did not follow.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newFetchError(op, &statusError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBody)),
		})
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return newFetchError(op, fmt.Errorf("failed to decode response: %w", err))
		}
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, op, path string, result interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, nil, result)
}

// Post performs a POST request. The response body is ignored when result is nil.
func (c *Client) Post(ctx context.Context, op, path string, body interface{}, result interface{}) error {
	return c.do(ctx, op, http.MethodPost, path, body, result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}
