// Package provider implements a client for OpenAI-compatible chat-completion
// endpoints, including tool-call requests, streaming passthrough, and the
// shared upstream error-mapping chokepoint.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Client issues chat-completion requests to the configured provider. It holds
// no per-request state; every call is a fresh upstream round trip.
type Client struct {
	cfg    *Config
	http   *http.Client
	logger *slog.Logger
}

// New creates a Client from the given config. The underlying http.Client has
// no global timeout; Complete applies the configured request timeout per call
// and Stream relies on caller context cancellation so long streams survive.
func New(cfg *Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: logger.With("system", "provider"),
	}
}

// Configured reports whether an upstream credential is present.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Model returns the configured default model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete sends a non-streaming chat-completion request and returns the
// parsed response. Known provider failures (429, 402) are returned as their
// normalized errors before any parsing; other non-success statuses are logged
// with status and body and returned as ErrUpstream.
func (c *Client) Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	req.Stream = false

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeoutDuration())
	defer cancel()

	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	if mapped := MapStatus(resp.StatusCode); mapped != nil {
		return nil, mapped
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error(
			"upstream request failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed ChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	return &parsed, nil
}

// Stream sends a streaming chat-completion request and returns the raw
// response body for incremental forwarding. The stream either starts validly
// or not at all: failure statuses are fully consumed here and never leak a
// partial stream. Cancelling ctx tears down the upstream connection.
func (c *Client) Stream(ctx context.Context, req *ChatRequest) (*StreamResponse, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	req.Stream = true

	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if mapped := MapStatus(resp.StatusCode); mapped != nil {
			return nil, mapped
		}

		c.logger.Error(
			"upstream stream failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/event-stream"
	}

	return &StreamResponse{
		Body:        resp.Body,
		ContentType: contentType,
	}, nil
}

func (c *Client) send(ctx context.Context, req *ChatRequest) (*http.Response, error) {
	if req.Model == "" {
		req.Model = c.cfg.Model
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return resp, nil
}
