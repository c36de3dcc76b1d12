// Package wire implements a W3C WebDriver session over the
// HTTP wire protocol. It speaks to any conformant remote end
// (chromedriver, geckodriver, Selenium) and satisfies the
// session.Session query surface.
package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"digital.vasic.webassert/pkg/logging"
)

// ClientOption configures a Client via functional options.
type ClientOption func(*Client)

// Client is a W3C WebDriver remote-end client. Defaults match
// common conventions so callers can use NewClient(url) with
// zero options.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a client targeting the given WebDriver
// endpoint, e.g. "http://localhost:9515".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.NullLogger{},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithTimeout overrides the default HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger receiving driver command traffic.
func WithLogger(logger logging.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// SessionID returns the active session ID, or "" before
// NewSession.
func (c *Client) SessionID() string {
	return c.sessionID
}

// CommandError is a WebDriver protocol-level error response.
type CommandError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"webdriver: %s: %s", e.Code, e.Message,
	)
}

// wireResponse is the envelope every remote end wraps values
// in.
type wireResponse struct {
	Value json.RawMessage `json:"value"`
}

// do issues one WebDriver command and decodes the value field
// into out (when out is non-nil). Protocol errors come back as
// *CommandError; transport failures as wrapped errors.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	out any,
) error {
	var reqBody io.Reader
	var rawBody []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode command body: %w", err)
		}
		rawBody = data
		reqBody = bytes.NewReader(data)
	} else if method == http.MethodPost {
		// Remote ends require a JSON body on every POST.
		rawBody = []byte("{}")
		reqBody = bytes.NewReader(rawBody)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, reqBody,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	commandID := uuid.NewString()
	started := time.Now()

	c.logger.LogDriverCommand(logging.CommandLog{
		Timestamp:  started.Format(time.RFC3339Nano),
		CommandID:  commandID,
		SessionID:  c.sessionID,
		Method:     method,
		Endpoint:   path,
		Body:       string(rawBody),
		BodyLength: len(rawBody),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("command %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	preview := string(data)
	if len(preview) > 256 {
		preview = preview[:256]
	}
	c.logger.LogDriverResult(logging.CommandResultLog{
		Timestamp:      time.Now().Format(time.RFC3339Nano),
		CommandID:      commandID,
		StatusCode:     resp.StatusCode,
		ValuePreview:   preview,
		BodyLength:     len(data),
		ResponseTimeMs: time.Since(started).Milliseconds(),
	})

	var envelope wireResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf(
			"parse response (HTTP %d): %w",
			resp.StatusCode, err,
		)
	}

	if resp.StatusCode >= 400 {
		cmdErr := &CommandError{Status: resp.StatusCode}
		if err := json.Unmarshal(
			envelope.Value, cmdErr,
		); err != nil {
			cmdErr.Code = "unknown error"
			cmdErr.Message = string(data)
		}
		return cmdErr
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Value, out); err != nil {
			return fmt.Errorf("decode value: %w", err)
		}
	}
	return nil
}

// NewSession starts a WebDriver session with the given
// capabilities. Pass nil for a default session.
func (c *Client) NewSession(
	ctx context.Context,
	capabilities map[string]any,
) error {
	if capabilities == nil {
		capabilities = map[string]any{}
	}
	body := map[string]any{
		"capabilities": map[string]any{
			"alwaysMatch": capabilities,
		},
	}

	var value struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.do(
		ctx, http.MethodPost, "/session", body, &value,
	); err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	if value.SessionID == "" {
		return fmt.Errorf(
			"new session: remote end returned no session id",
		)
	}

	c.sessionID = value.SessionID
	return nil
}

// DeleteSession ends the current session.
func (c *Client) DeleteSession(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}
	err := c.do(
		ctx, http.MethodDelete,
		"/session/"+c.sessionID, nil, nil,
	)
	c.sessionID = ""
	return err
}

// NavigateTo loads the given URL in the session.
func (c *Client) NavigateTo(
	ctx context.Context,
	url string,
) error {
	return c.do(
		ctx, http.MethodPost,
		c.sessionPath("/url"),
		map[string]any{"url": url},
		nil,
	)
}

// sessionPath prefixes a command path with the session root.
func (c *Client) sessionPath(suffix string) string {
	return "/session/" + c.sessionID + suffix
}

// isCode reports whether err is a protocol error with the
// given W3C error code.
func isCode(err error, code string) bool {
	cmdErr, ok := err.(*CommandError)
	return ok && cmdErr.Code == code
}
