// Package api is the typed client for the gestion-loyer REST API. Every
// call carries the session's bearer token; a 401 clears the session and
// returns ErrSessionExpired so the caller can force a re-login. There is
// no retry, caching or request deduplication: every load re-fetches from
// scratch.
package api

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sodamareme/gestion-loyer-cli/internal/config"
	"github.com/Sodamareme/gestion-loyer-cli/internal/metrics"
)

// Client is the HTTP client for the gestion-loyer API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *Session
	exporter   *metrics.Exporter
	log        *zap.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client; tests use it to
// point at an httptest server transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithExporter attaches per-call Prometheus instrumentation.
func WithExporter(e *metrics.Exporter) Option {
	return func(c *Client) { c.exporter = e }
}

// WithLogger replaces the default nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the API at cfg.BaseURL. The base URL
// must include the /api prefix the server mounts its routes under.
func NewClient(cfg config.APIConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session = newSession(c)
	return c, nil
}

// Session returns the client's session for login, logout and claims.
func (c *Client) Session() *Session { return c.session }

// Owners returns the owner service.
func (c *Client) Owners() *OwnerService { return &OwnerService{c} }

// Tenants returns the tenant service.
func (c *Client) Tenants() *TenantService { return &TenantService{c} }

// Units returns the unit service.
func (c *Client) Units() *UnitService { return &UnitService{c} }

// Leases returns the lease service.
func (c *Client) Leases() *LeaseService { return &LeaseService{c} }

// Payments returns the payment service.
func (c *Client) Payments() *PaymentService { return &PaymentService{c} }

// Documents returns the PDF generation service.
func (c *Client) Documents() *DocumentService { return &DocumentService{c} }

// Portal returns the tenant self-service API.
func (c *Client) Portal() *PortalService { return &PortalService{c} }

// do sends one request and maps the response envelope. A 401 clears the
// session and surfaces ErrSessionExpired; any other non-2xx decodes the
// error envelope into an APIError. out may be nil when the body is
// irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(path, method, 0, start)
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.observe(path, method, resp.StatusCode, start)

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.clear()
		c.log.Warn("session expirée, déconnexion forcée",
			zap.String("method", method), zap.String("path", path))
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) observe(path, method string, status int, start time.Time) {
	if c.exporter == nil {
		return
	}
	c.exporter.ObserveRequest(metricPath(path), method, status, time.Since(start))
}

// metricPath strips IDs and query strings so metrics stay low
// cardinality.
func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: defaultMessage}
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
	}
	return apiErr
}

// getJSON fetches path and decodes the response into T.
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, "", &out)
	return out, err
}

// sendJSON marshals body and sends it with the given method, decoding
// the response into T.
func sendJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("api: encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}
	err := c.do(ctx, method, path, reader, "application/json", &out)
	return out, err
}

func postJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPost, path, body)
}

func putJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPut, path, body)
}
