// Package client talks to the holiday API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/version"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// RequestIDHeader carries the per-search id to the API.
const RequestIDHeader = "X-Request-ID"

// Fetcher retrieves holidays for a set of criteria.
type Fetcher interface {
	Fetch(ctx context.Context, criteria holiday.Criteria) (holiday.Response, error)
}

// Client queries the holiday API over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     logging.Logger
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for endpoint. A non-positive timeout uses DefaultTimeout.
func New(endpoint string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL builds the request URL. Country and year are appended as given:
// callers pass simple tokens (ISO codes, years) and own any encoding.
func (c *Client) URL(criteria holiday.Criteria) string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + "country=" + criteria.Country + "&year=" + criteria.Year
}

// Fetch issues one GET request and decodes the JSON envelope.
//
// The body is decoded whatever the HTTP status: the API reports its own failures
// as {"success": false, "error": "..."} with a 5xx status. Every error returned is a
// transport error: the request could not be made, or the body was not valid JSON.
func (c *Client) Fetch(ctx context.Context, criteria holiday.Criteria) (holiday.Response, error) {
	reqURL := c.URL(criteria)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return holiday.Response{}, apperrors.Transport(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return holiday.Response{}, apperrors.Transport(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("holiday api responded",
		"url", reqURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	var out holiday.Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return holiday.Response{}, apperrors.Transport(fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err))
	}
	return out, nil
}

type requestIDKey struct{}

// ContextWithRequestID attaches a request id that Fetch forwards in RequestIDHeader.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
