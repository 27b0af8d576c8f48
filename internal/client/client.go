// Package client is the console side of the fleet API: a thin REST transport,
// an in-memory snapshot store of every collection, a mutation coordinator that
// refetches after each write, and the dashboard derivations over the
// snapshots.
package client

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

// StatusError is any non-2xx response, carrying the status code and the raw
// body. The API has no structured error schema; callers get the text as-is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: status %d, message: %s", e.Code, e.Body)
}

// Client performs HTTP verbs against the fleet API under {baseURL}/api.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Login authenticates against /api/auth/login and stores the bearer token for
// every subsequent call.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "auth/login", body, &out); err != nil {
		return err
	}
	c.Token = out.Token
	return nil
}

// Get fetches a collection (or any API path) and decodes the JSON body into dst.
func (c *Client) Get(ctx context.Context, endpoint string, dst interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, dst)
}

// Post creates a record. dst may be nil when the response body is not needed.
func (c *Client) Post(ctx context.Context, endpoint string, body, dst interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, dst)
}

// Put updates the record with the given id under endpoint.
func (c *Client) Put(ctx context.Context, endpoint, id string, body, dst interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint+"/"+id, body, dst)
}

// Delete removes the record with the given id under endpoint.
func (c *Client) Delete(ctx context.Context, endpoint, id string) error {
	return c.do(ctx, http.MethodDelete, endpoint+"/"+id, nil, nil)
}

// GetRaw fetches an API path and returns the raw body bytes. Used for the
// spreadsheet downloads, which are opaque blobs.
func (c *Client) GetRaw(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, dst interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return handleResponse(resp, dst)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s/api/%s", c.BaseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return req, nil
}

// handleResponse surfaces non-2xx statuses as StatusError and decodes JSON
// bodies. A 2xx response with a non-JSON content type counts as success with
// no payload; some endpoints answer with plain text or nothing at all.
func handleResponse(resp *http.Response, dst interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil
	}
	if dst == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
