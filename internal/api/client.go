// Package api is the HTTP client for the MoneyTogether backend. It is the
// asynchronous-call boundary the domain packages depend on: requests carry
// a context, time out explicitly, and retry transient failures a bounded
// number of times. Nothing in here sleeps at random or fakes outcomes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/auth"
	"github.com/Money-Together/moneytogether/internal/models"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 2
	retryBackoff   = 250 * time.Millisecond
)

// Error is a non-2xx API response.
type Error struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client talks JSON over HTTP to the backend. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	session    *auth.Session
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetries bounds the number of retry attempts after the first try.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithSession attaches a login session; authorized endpoints take their
// bearer token from it.
func WithSession(s *auth.Session) Option {
	return func(c *Client) { c.session = s }
}

// NewClient builds a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		retries:    defaultRetries,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	// Metrics wrap whatever transport survived the options, so a swapped-in
	// client is counted the same as the default one. The caller's client is
	// copied, not mutated.
	hc := *c.httpClient
	rt := hc.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	hc.Transport = instrument(rt)
	c.httpClient = &hc
	return c
}

// Login exchanges credentials for an access token and installs it in the
// attached session, if any.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := loginRequest{Email: email, Password: password}
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", in, &out, false); err != nil {
		return "", err
	}
	if c.session != nil {
		if err := c.session.SetToken(out.AccessToken); err != nil {
			return "", fmt.Errorf("login returned unusable token: %w", err)
		}
	}
	return out.AccessToken, nil
}

// GetWallet fetches a wallet with its roster and cashbox flag.
func (c *Client) GetWallet(ctx context.Context, walletID uuid.UUID) (models.Wallet, error) {
	var out walletDTO
	if err := c.do(ctx, http.MethodGet, "/v1/wallets/"+walletID.String(), nil, &out, true); err != nil {
		return models.Wallet{}, err
	}
	return out.toModel()
}

// CreateCategory registers a category and returns it with the
// server-assigned ID.
func (c *Client) CreateCategory(ctx context.Context, walletID uuid.UUID, cat models.Category) (models.Category, error) {
	var out categoryDTO
	err := c.do(ctx, http.MethodPost, "/v1/wallets/"+walletID.String()+"/categories", categoryFromModel(cat), &out, true)
	if err != nil {
		return models.Category{}, err
	}
	return out.toModel(), nil
}

// UpdateCategory replaces a category server-side.
func (c *Client) UpdateCategory(ctx context.Context, walletID uuid.UUID, cat models.Category) error {
	path := "/v1/wallets/" + walletID.String() + "/categories/" + cat.ID
	return c.do(ctx, http.MethodPut, path, categoryFromModel(cat), nil, true)
}

// DeleteCategory removes a category server-side.
func (c *Client) DeleteCategory(ctx context.Context, walletID uuid.UUID, categoryID string) error {
	path := "/v1/wallets/" + walletID.String() + "/categories/" + categoryID
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// do runs one JSON request with bounded retries. Network failures and
// 5xx responses retry; 4xx responses are the caller's problem and return
// immediately.
func (c *Client) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			slog.Debug("retrying request", "method", method, "path", path, "attempt", attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		retriable, err := c.once(ctx, method, path, body, out, authed)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retriable {
			return err
		}
	}
	return fmt.Errorf("%s %s failed after %d attempts: %w", method, path, c.retries+1, lastErr)
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any, authed bool) (retriable bool, err error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.session == nil {
			return false, auth.ErrNoSession
		}
		if err := c.session.Authorize(req); err != nil {
			return false, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context cancellation is final; transport errors retry.
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Message = resp.Status
		}
		return resp.StatusCode >= 500, apiErr
	}

	if out == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
