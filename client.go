package assetbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the remote asset collection.
type Service interface {
	List(ctx context.Context) ([]Asset, error)
	Create(ctx context.Context, in Input) (Asset, error)
	Update(ctx context.Context, id ID, in Input) (Asset, error)
	Delete(ctx context.Context, id ID) (Confirmation, error)
}

// Confirmation is the body returned by a successful delete.
type Confirmation struct {
	Message string `json:"message"`
}

// Client talks to the asset REST API rooted at a base URL such as
// http://localhost:5000/api.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http client used to send requests.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger sets the logger used to trace requests.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

// NewClient returns a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API url %q: want an absolute http url", baseURL)
	}
	c := &Client{base: base, http: http.DefaultClient, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	// wrap a copy, the caller's client is left untouched.
	traced := *c.http
	rt := traced.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	traced.Transport = &tracer{base: rt, log: c.log}
	c.http = &traced
	return c, nil
}

// List returns the whole collection, in server order.
func (c *Client) List(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, OpList, http.MethodGet, c.endpoint(), nil, &assets); err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []Asset{}
	}
	return assets, nil
}

// Create posts a new asset and returns the record assigned by the server.
func (c *Client) Create(ctx context.Context, in Input) (a Asset, err error) {
	err = c.do(ctx, OpCreate, http.MethodPost, c.endpoint(), in, &a)
	return
}

// Update replaces the asset id with in and returns the updated record.
func (c *Client) Update(ctx context.Context, id ID, in Input) (a Asset, err error) {
	err = c.do(ctx, OpUpdate, http.MethodPut, c.endpoint(id.segment()), replacement(in), &a)
	return
}

// Delete removes the asset id.
func (c *Client) Delete(ctx context.Context, id ID) (conf Confirmation, err error) {
	err = c.do(ctx, OpDelete, http.MethodDelete, c.endpoint(id.segment()), nil, &conf)
	return
}

// Summary returns the totals computed by the server.
func (c *Client) Summary(ctx context.Context) (s Summary, err error) {
	err = c.do(ctx, OpSummary, http.MethodGet, c.endpoint("summary"), nil, &s)
	return
}

// endpoint joins already escaped path segments to the collection url.
func (c *Client) endpoint(elem ...string) string {
	return c.base.JoinPath(append([]string{"assets"}, elem...)...).String()
}

// do sends a JSON request and decodes a JSON answer into out.
// Every non-2xx status is an *APIError.
func (c *Client) do(ctx context.Context, op Op, method, addr string, body, out any) error {
	var r io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		r = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, r)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: op, Status: resp.StatusCode, Message: errorMessage(buf.Bytes(), op.Fallback())}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("cannot decode %v %v answer: %w", method, req.URL.Path, err)}
	}
	return nil
}

// RequestIDHeader carries the id generated for each request.
const RequestIDHeader = "X-Request-Id"

// tracer tags every request with an id and logs it with its outcome.
type tracer struct {
	base http.RoundTripper
	log  *zap.Logger
}

func (t *tracer) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request.
	req = req.Clone(req.Context())
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Warn("request failed",
			zap.String("id", id),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, err
	}
	t.log.Debug("request",
		zap.String("id", id),
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}
