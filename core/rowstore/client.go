package rowstore

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
	"strings"
	"time"

	"go.uber.org/zap"
)

// xssiPrefix is the anti-hijacking token some row-store deployments prepend
// to JSON bodies served with a text content type.
const xssiPrefix = ")]}'"

// retryDelays is the fixed backoff schedule between attempts.
var retryDelays = []time.Duration{400 * time.Millisecond, 1200 * time.Millisecond}

// Client defines the interface for row-store operations.
type Client interface {
	// Fetch issues one logical request, retrying transport-class failures
	// up to the configured ceiling before surfacing an error.
	Fetch(ctx context.Context, req Request) (*Result, error)
}

// client is the HTTP implementation of Client.
type client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	retries int
	delays  []time.Duration
	logger  *zap.Logger
}

// NewClient creates a new row-store client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("row store base_url is not configured")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid row store base_url: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &client{
		// Per-attempt timeouts are enforced via context; the transport gets
		// conservative connection-level limits on top.
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   time.Duration(timeout) * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   time.Duration(timeout) * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		baseURL: cfg.BaseURL,
		timeout: time.Duration(timeout) * time.Second,
		retries: retries,
		delays:  retryDelays,
		logger:  logger,
	}, nil
}

// Fetch implements Client.
func (c *client) Fetch(ctx context.Context, req Request) (*Result, error) {
	attempts := c.retries + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.delays[len(c.delays)-1]
			if attempt-1 < len(c.delays) {
				delay = c.delays[attempt-1]
			}
			c.logger.Debug("Retrying row store request",
				zap.String("action", req.Action),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &NetworkError{Err: ctx.Err()}
			}
		}

		result, err := c.attempt(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}
	}

	// Exhausted all attempts on a transport-class error.
	var timeoutErr *TimeoutError
	if errors.As(lastErr, &timeoutErr) {
		timeoutErr.Attempts = attempts
	}
	return nil, lastErr
}

// attempt performs a single HTTP exchange with its own wall-clock timeout.
func (c *client) attempt(ctx context.Context, req Request) (*Result, error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target, err := c.buildURL(req)
	if err != nil {
		return nil, &MalformedError{Err: err}
	}

	method := http.MethodGet
	var body io.Reader
	if req.Body != nil {
		method = http.MethodPost
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &MalformedError{Err: err}
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(actx, method, target, body)
	if err != nil {
		return nil, &MalformedError{Err: err}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused across retries.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	return parseEnvelope(resp.Header.Get("Content-Type"), raw)
}

// buildURL composes the action plus filters into the request URL.
func (c *client) buildURL(req Request) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("action", req.Action)
	for k, v := range req.Params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// classifyTransportError maps low-level errors onto the fetch taxonomy.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Attempts: 1}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Attempts: 1}
	}
	return &NetworkError{Err: err}
}

// parseEnvelope decodes the success envelope. Non-JSON content types fall
// back to stripping the anti-hijacking prefix before parsing the raw text.
func parseEnvelope(contentType string, raw []byte) (*Result, error) {
	body := bytes.TrimSpace(raw)
	if !strings.Contains(contentType, "json") {
		body = bytes.TrimSpace(bytes.TrimPrefix(body, []byte(xssiPrefix)))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedError{Err: err}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "request failed"
		}
		return nil, &APIError{Message: msg}
	}

	return &Result{Data: env.Data, Message: env.Message}, nil
}
