// Package api implements the HTTP request gateway: a single chokepoint that
// every backend operation goes through. It speaks JSON over POST against a
// fixed base URL, carries the session cookie automatically, and normalizes
// failures into the ProtocolError/APIError/ErrUnavailable taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventorypro/cli/internal/logging"
)

// newRequestID is a test seam for request id generation.
var newRequestID = uuid.NewString

// Envelope is the common part of every backend response. Endpoint-specific
// response types embed it next to their payload fields.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Err converts an application-level failure (success=false under HTTP 200)
// into an *APIError. Status stays zero: the failure is not an HTTP one.
func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{Message: msg}
}

// Client is the request gateway. Safe for concurrent use: different screens'
// requests may overlap freely.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client against baseURL. The cookie jar keeps the backend
// session cookie attached to every subsequent request, so the client never
// manages a token by hand.
func New(baseURL string, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		log:     log,
	}, nil
}

// Call issues method against <base>/<endpoint>. A non-nil body is serialized
// as JSON (and only then is Content-Type set). The response text is read
// first and parsed afterwards, so a non-JSON body surfaces as a
// ProtocolError rather than an uncaught decode failure. On 2xx the body is
// decoded into out when out is non-nil; callers still inspect the Success
// field of their embedded Envelope.
func (c *Client) Call(ctx context.Context, endpoint, method string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := newRequestID()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "endpoint", endpoint, "req_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "reading response failed", "endpoint", endpoint, "req_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.log.Error(ctx, "invalid JSON from server",
			"endpoint", endpoint, "req_id", reqID, "status", resp.StatusCode, "raw", string(raw))
		return &ProtocolError{Raw: string(raw), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := ""
		if m, ok := parsed.(map[string]any); ok {
			if s, ok := m["message"].(string); ok {
				message = s
			}
		}
		c.log.Info(ctx, "request rejected",
			"endpoint", endpoint, "req_id", reqID, "status", resp.StatusCode)
		return &APIError{Status: resp.StatusCode, Message: message, Body: raw}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.log.Error(ctx, "unexpected response shape",
				"endpoint", endpoint, "req_id", reqID, "raw", string(raw))
			return &ProtocolError{Raw: string(raw), Err: err}
		}
	}

	c.log.Debug(ctx, "request finished", "endpoint", endpoint, "req_id", reqID, "status", resp.StatusCode)
	return nil
}
