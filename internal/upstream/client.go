// Package upstream is the HTTP client for the commerce API the backoffice
// fronts. Every response uses the `{success, message, ...}` envelope; a
// success:false body surfaces as *models.UpstreamError, never a panic.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopnobd/backoffice/internal/models"
)

const defaultTimeout = 15 * time.Second

// Config carries the explicit client configuration; there is no ambient
// origin or credential state.
type Config struct {
	// BaseURL is the commerce API origin, e.g. https://api.example.com.
	BaseURL string
	// Token is the default credential attached when the context carries none.
	Token string
	// Timeout bounds each request; zero means the default.
	Timeout time.Duration
}

// Client talks to the commerce API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// New creates a new Client instance.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
	}
}

type contextKey int

const contextKeyToken contextKey = iota

// ContextWithToken attaches the caller's credential to the context so it is
// forwarded as the raw `token` header on upstream calls.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKeyToken, token)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextKeyToken).(string)
	return token, ok && token != ""
}

// Envelope is the response wrapper every upstream endpoint uses.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e Envelope) fail() error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	return &models.UpstreamError{Message: msg}
}

// enveloped is implemented by every response type via an embedded Envelope.
type enveloped interface {
	fail() error
}

func (c *Client) do(ctx context.Context, method string, query url.Values, contentType string, body io.Reader, out enveloped, segments ...string) error {
	u, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := tokenFromContext(ctx); ok {
		req.Header.Set("token", token)
	} else if c.token != "" {
		req.Header.Set("token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// non-2xx with a parseable envelope is still a business failure
		var env Envelope
		if jerr := json.Unmarshal(data, &env); jerr == nil && !env.Success {
			return env.fail()
		}
		return fmt.Errorf("upstream: %s /%s: unexpected status %d", method, strings.Join(segments, "/"), resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return out.fail()
}

func (c *Client) doJSON(ctx context.Context, method string, payload any, out enveloped, segments ...string) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.do(ctx, method, nil, contentType, body, out, segments...)
}

func (c *Client) doGet(ctx context.Context, query url.Values, out enveloped, segments ...string) error {
	return c.do(ctx, http.MethodGet, query, "", nil, out, segments...)
}

func (c *Client) doForm(ctx context.Context, method string, form *Form, out enveloped, segments ...string) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, method, nil, contentType, body, out, segments...)
}
