package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/goaltracker/internal/common"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
	"github.com/google/uuid"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

var ErrInvalidBaseURL = errors.New("invalid base url")

// HTTPClient talks JSON to the REST API rooted at baseURL.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	transport *authTransport
	log       logging.Logger
}

type options struct {
	base    http.RoundTripper
	timeout time.Duration
	log     logging.Logger
}

type Option func(*options)

// WithBaseTransport sets the RoundTripper decorated by the auth transport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// WithTimeout bounds every request, including reading the response body.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewHTTPClient builds a client for baseURL (origin plus optional path
// prefix, e.g. "https://api.example.com/api").
func NewHTTPClient(baseURL string, store TokenStore, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	o := options{log: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log.With("component", "http_client")
	t := newAuthTransport(o.base, u.Host, store, log)

	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Transport: t, Timeout: o.timeout},
		transport: t,
		log:       log,
	}, nil
}

// OnUnauthorized registers fn to run after any request answered with 401,
// once the stored token has been cleared.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.transport.unauthorized.add(fn)
}

// Do sends in (JSON-encoded, may be nil) to path and decodes the response
// payload into out (may be nil). 204 and empty bodies leave out untouched.
// Failures are returned as *APIError, except request encoding and response
// decoding problems which are plain wrapped errors.
func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return Classify(0, nil, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Classify(0, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Classify(resp.StatusCode, payload, nil)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, in, out)
}

func (c *HTTPClient) Patch(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPatch, path, in, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
