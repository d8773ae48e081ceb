// Package client is the Go SDK for the operations API: one method per
// endpoint over a shared HTTP client that injects the bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotelops-backend/session"
)

// TokenStore persists the bearer token between runs.
type TokenStore = session.TokenStore

// Client talks to the REST API under BaseURL (for example
// "http://localhost:8080/api"). Requests are sent once; there is no retry.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	tokens     TokenStore
	session    *session.Store
	onAuthFail func(reason string)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithAuthFailure registers fn to run after a 401 cleared the stored token.
func WithAuthFailure(fn func(reason string)) Option {
	return func(c *Client) { c.onAuthFail = fn }
}

// WithSession keeps store in step with the client: a successful login or
// register dispatches LoginSuccess, Logout resets it, and a 401 goes
// through store.HandleAuthFailure. store should share the client's
// TokenStore.
func WithSession(store *session.Store) Option {
	return func(c *Client) { c.session = store }
}

func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Status      int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// File is a binary field of a multipart request.
type File struct {
	Name   string
	Reader io.Reader
}

type filePart struct {
	field string
	file  File
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart sends in as a JSON "data" field next to the file parts.
// Without files it falls back to a plain JSON request.
func (c *Client) doMultipart(ctx context.Context, method, path string, in interface{}, files []filePart, out interface{}) error {
	if len(files) == 0 {
		return c.doJSON(ctx, method, path, nil, in, out)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := w.WriteField("data", string(data)); err != nil {
		return err
	}
	for _, fp := range files {
		part, err := w.CreateFormFile(fp.field, fp.file.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, fp.file.Reader); err != nil {
			return fmt.Errorf("copy %s: %w", fp.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp.StatusCode, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *Client) apiError(status int, body []byte) error {
	apiErr := &APIError{Status: status}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Error
		if apiErr.Message == "" {
			apiErr.Message = env.Message
		}
		apiErr.FieldErrors = env.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	if status == http.StatusUnauthorized {
		_ = c.tokens.Clear()
		if c.session != nil {
			c.session.HandleAuthFailure(apiErr.Message)
		}
		if c.onAuthFail != nil {
			c.onAuthFail(apiErr.Message)
		}
	}
	return apiErr
}

// download fetches a non-JSON body such as a spreadsheet.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.apiError(resp.StatusCode, body)
	}
	return body, nil
}

// Page is a page of a list endpoint.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func idPath(format string, ids ...uint) string {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return fmt.Sprintf(format, args...)
}
