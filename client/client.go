// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/hackconsole/auth"
)

const HeaderRequestID = "X-Request-ID"

// TokenSource supplies the bearer token for each call. An empty token
// means the call is sent without an Authorization header.
type TokenSource interface {
	Token() string
}

// Result is the outcome of a call that reached the backend.
// Payload is the parsed response body, or {"status": code} when the body
// was not JSON.
type Result struct {
	StatusCode int             `json:"status_code"`
	Payload    json.RawMessage `json:"payload"`
}

// OK reports whether the backend answered with a 2xx status.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the payload into v.
func (r Result) Decode(v interface{}) error {
	return json.Unmarshal(r.Payload, v)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. for httptest servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the backend at baseURL.
// The default http.Client has no timeout; a hung call blocks until ctx ends.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call sends one request and returns the backend's answer. Non-2xx
// statuses come back as a Result with OK() == false, not as an error.
// The returned error is only set when no response was received (or the
// body could not be encoded or read). There is no retry.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) (Result, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	auth.Authorize(req, token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("backend call failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return Result{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	result := Result{
		StatusCode: resp.StatusCode,
		Payload:    parsePayload(raw, resp.StatusCode),
	}

	slog.Debug("backend call completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"size", humanize.Bytes(uint64(len(raw))),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
		"token", auth.Mask(token),
	)

	return result, nil
}

// parsePayload keeps a valid JSON body as is and substitutes
// {"status": code} for anything else, including an empty body.
func parsePayload(raw []byte, status int) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	return StatusPayload(status)
}

// StatusPayload is the fallback body for a response that was not JSON.
func StatusPayload(status int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"status":%d}`, status))
}
