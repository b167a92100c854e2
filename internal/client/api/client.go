// Package api implements the HTTP client the remote repositories are built
// on: JSON encode/decode, bearer-token auth with refresh rotation, mapping
// of HTTP statuses onto the shared error taxonomy, and bounded retry with
// exponential backoff for transient transport failures only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/sethvargo/go-retry"
)

// Config carries transport tuning. TTLs and retry parameters are
// configuration, never per-repository constants.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	RetryAttempts  uint64
	RetryBaseDelay time.Duration
}

type tokenPair struct {
	access  string
	refresh string
}

// Client is the sole HTTP gateway of the planner client. Safe for use from
// multiple goroutines.
type Client struct {
	http   *http.Client
	base   string
	cfg    Config
	logger logging.Logger

	mu     sync.Mutex
	tokens tokenPair
}

func New(cfg Config, logger logging.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 100 * time.Millisecond
	}
	return &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		base:   strings.TrimSuffix(cfg.BaseURL, "/") + common.APIBasePath,
		cfg:    cfg,
		logger: logger,
	}
}

// SetTokens installs the access/refresh token pair after login or refresh.
func (c *Client) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokenPair{access: access, refresh: refresh}
}

// ClearTokens drops the session, e.g. on logout.
func (c *Client) ClearTokens() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokenPair{}
}

func (c *Client) currentTokens() tokenPair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// Do performs one JSON request against the API. in (if non-nil) is sent as
// the body; out (if non-nil) receives the decoded response. Transient
// failures (transport errors, 5xx) are retried with exponential backoff up
// to the configured attempt count; business errors are surfaced immediately.
// A 401 is retried once after a refresh-token rotation.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	err := c.doWithRetry(ctx, method, path, in, out)
	if err == nil {
		return nil
	}

	if errors.Is(err, common.ErrUnauthorized) && c.currentTokens().refresh != "" {
		if refreshErr := c.refreshSession(ctx); refreshErr != nil {
			return err
		}
		return c.doWithRetry(ctx, method, path, in, out)
	}
	return err
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, in, out any) error {
	backoff := retry.WithMaxRetries(c.cfg.RetryAttempts, retry.NewExponential(c.cfg.RetryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.doOnce(ctx, method, path, in, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, common.ErrTransient) {
			c.logger.Warn(ctx, "transient request failure, will retry", "method", method, "path", path, "err", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.currentTokens().access; tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// statusError maps an HTTP error response onto the shared sentinel set,
// keeping the server-provided message for diagnostics.
func statusError(resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrAlreadyExists, msg)
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: server returned %s", common.ErrTransient, msg)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}
