package llm

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/resilience"
)

// Client is a config-driven LLM client that works with any provider via the
// Dialect pattern. Transport failures and 429/5xx responses are classified as
// retryable; when the config carries a retry policy the client retries them
// with bounded exponential backoff.
type Client struct {
	cfg     Config
	dialect Dialect
	http    *http.Client
}

// New creates an LLM client from config using the global dialect registry.
// The config's Dialect field must match a registered dialect name.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()

	dialect, err := GetDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return NewWithDialect(dialect, cfg)
}

// NewWithDialect creates an LLM client with an explicit dialect instance.
// Use this when you don't want to rely on the global dialect registry.
func NewWithDialect(dialect Dialect, cfg Config) (*Client, error) {
	if dialect == nil {
		return nil, fmt.Errorf("llm: dialect is required")
	}
	cfg.ApplyDefaults()
	if cfg.Name == "" {
		cfg.Name = dialect.Name() + "-llm"
	}
	return &Client{
		cfg:     cfg,
		dialect: dialect,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Name returns the client name.
func (c *Client) Name() string { return c.cfg.Name }

// Dialect returns the dialect used by this client.
func (c *Client) Dialect() Dialect { return c.dialect }

// IsAvailable checks if the provider is reachable via the dialect's health endpoint.
func (c *Client) IsAvailable(ctx context.Context) bool {
	hp := c.dialect.HealthPath()
	if hp == "" {
		return true
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+hp, http.NoBody)
	if err != nil {
		return false
	}
	c.setHeaders(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Complete sends a completion request and returns the full response.
// Retryable failures are retried per the configured policy.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	c.applyRequestDefaults(&req)

	if c.cfg.Retry == nil {
		return c.complete(ctx, req)
	}
	return resilience.Retry(ctx, *c.cfg.Retry, func() (*CompletionResponse, error) {
		return c.complete(ctx, req)
	})
}

func (c *Client) complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	body, err := c.dialect.BuildRequest(req)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("llm: build request: %w", err))
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("llm: encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+c.dialect.ChatPath(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("llm: create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ExternalService(c.cfg.Name, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(resp.StatusCode, raw)
	}

	parsed, err := c.dialect.ParseResponse(raw)
	if err != nil {
		return nil, errors.MalformedGeneration(err.Error())
	}
	return parsed, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
}

func (c *Client) applyRequestDefaults(req *CompletionRequest) {
	if req.Model == "" {
		req.Model = c.cfg.Model
	}
	if req.Temperature == 0 {
		req.Temperature = c.cfg.Temperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = c.cfg.MaxTokens
	}
}

// classifyTransportErr maps connection-level failures. Deadline expiry becomes
// a timeout error; everything else is a retryable external-service error.
func (c *Client) classifyTransportErr(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "Client.Timeout exceeded") {
		return errors.Timeout(c.cfg.Name + " completion")
	}
	if stderrors.Is(err, context.Canceled) {
		return err
	}
	return errors.ExternalService(c.cfg.Name, err)
}

// classifyStatus maps non-200 responses. 429 and 5xx are retryable; client
// errors like bad auth or bad request are not.
func (c *Client) classifyStatus(status int, body []byte) error {
	cause := fmt.Errorf("status %d: %s", status, truncate(string(body), 200))
	if status == http.StatusTooManyRequests || status >= 500 {
		return errors.ExternalService(c.cfg.Name, cause)
	}
	appErr := errors.ExternalService(c.cfg.Name, cause)
	appErr.Retryable = false
	return appErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
