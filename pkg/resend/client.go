// Package resend is a minimal client for the Resend transactional email API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/mirsglobal/website/internal/config"
)

var ErrMissingAPIKey = errors.New("resend: api key not configured")

// Client wraps the Resend /emails endpoint. Failures are terminal for the
// attempt; the caller decides whether the user retries.
type Client struct {
	cfg    config.ResendConfig
	client *http.Client

	closed int32 // atomic flag for Close()
}

// Message is the payload accepted by the Resend emails endpoint.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse is the subset of the Resend reply we care about.
type sendResponse struct {
	ID string `json:"id"`
}

// NewClient creates a new Resend client wrapper.
func NewClient(cfg config.ResendConfig, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{cfg: cfg, client: httpClient}
	logger.Info("resend: NewClient created", slog.String("base_url", cfg.BaseURL), slog.Duration("timeout", cfg.Timeout))
	return c, nil
}

func NewDefaultClient(cfg config.ResendConfig) (*Client, error) {
	defaultClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return NewClient(cfg, defaultClient)
}

// package-level logger for pkg/resend; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/resend. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Configured reports whether an API key is present. A missing key is not an
// error at construction time; it becomes one when a send is attempted.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Send posts one email. A non-2xx response is returned as an error with the
// response body attached; there are no retries.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if !c.Configured() {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", err
	}
	u := base.ResolveReference(&url.URL{Path: "/emails"})

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("resend: send failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return "", fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(data))
	}

	var sr sendResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		// delivery was accepted; a malformed body only costs us the id
		logger.Error("resend: decode response", slog.Any("err", err))
	}

	logger.Info("resend: email sent",
		slog.String("id", sr.ID),
		slog.String("subject", msg.Subject),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
	)
	return sr.ID, nil
}

// Close releases any resources held by the client. Currently this will close
// idle connections on the underlying HTTP transport when supported. Close is
// idempotent and safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.client != nil && c.client.Transport != nil {
		if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	return nil
}
