// Package apper wraps the Apper hosted-database HTTP API behind the same
// query shape as the repositories, adding the connection lifecycle the SDK
// expects: disconnected -> connecting -> connected, or connecting -> failed.
package apper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateFailed       State = "failed"
)

const DefaultBaseURL = "https://api.apper.io"

// Error carries the retry classification surfaced to callers. CanRetry=false
// means either a configuration problem or exhausted automatic retries; the
// user may still retry manually by calling Initialize again.
type Error struct {
	Op       string
	Status   int
	CanRetry bool
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("apper: %s (%d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("apper: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Client struct {
	ProjectID string
	PublicKey string
	BaseURL   string
	HTTP      *http.Client

	ConnectTimeout time.Duration // per-attempt cap on the connect call
	MaxRetries     int           // transient retries after the first attempt
	BackoffBase    time.Duration // 1s, doubled per retry
	BackoffCap     time.Duration // 5s

	mu      sync.Mutex
	state   State
	pending chan struct{} // closed when the in-flight attempt settles
	lastErr error
}

// NewClientFromEnv builds a client from APPER_PROJECT_ID / APPER_PUBLIC_KEY
// (and optional APPER_BASE_URL). Missing credentials surface as a fatal,
// non-retryable error on Initialize, not here.
func NewClientFromEnv() *Client {
	base := os.Getenv("APPER_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		ProjectID:      os.Getenv("APPER_PROJECT_ID"),
		PublicKey:      os.Getenv("APPER_PUBLIC_KEY"),
		BaseURL:        base,
		HTTP:           &http.Client{Timeout: 30 * time.Second},
		ConnectTimeout: 15 * time.Second,
		MaxRetries:     3,
		BackoffBase:    time.Second,
		BackoffCap:     5 * time.Second,
		state:          StateDisconnected,
	}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == "" {
		return StateDisconnected
	}
	return c.state
}

// Initialize is idempotent. Concurrent callers share the in-flight attempt
// through one pending handle instead of polling.
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	if c.pending != nil {
		ch := c.pending
		c.mu.Unlock()
		select {
		case <-ch:
			c.mu.Lock()
			err := c.lastErr
			c.mu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	ch := make(chan struct{})
	c.pending = ch
	c.state = StateConnecting
	c.mu.Unlock()

	err := c.connect(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
	} else {
		c.state = StateConnected
	}
	c.lastErr = err
	c.pending = nil
	close(ch)
	c.mu.Unlock()
	return err
}

func (c *Client) connect(ctx context.Context) error {
	if c.ProjectID == "" || c.PublicKey == "" {
		return &Error{
			Op:       "initialize",
			CanRetry: false,
			Err:      errors.New("APPER_PROJECT_ID / APPER_PUBLIC_KEY no configurados"),
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.BackoffBase << (attempt - 1) // 1s, 2s, 4s
			if delay > c.BackoffCap {
				delay = c.BackoffCap
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return &Error{Op: "initialize", CanRetry: false, Err: ctx.Err()}
			}
		}

		err := c.ping(ctx)
		if err == nil {
			return nil
		}
		var apErr *Error
		if errors.As(err, &apErr) && !apErr.CanRetry {
			// credentials rejection, not a transient failure
			return apErr
		}
		lastErr = err
	}
	return &Error{
		Op:       "initialize",
		CanRetry: false,
		Err:      fmt.Errorf("reintentos agotados: %w", lastErr),
	}
}

func (c *Client) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/projects/%s/status", c.BaseURL, c.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Op: "connect", CanRetry: true, Err: err}
	}
	req.Header.Set("X-Apper-Public-Key", c.PublicKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Op: "connect", CanRetry: true, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{Op: "connect", Status: resp.StatusCode, CanRetry: false, Err: errors.New("credenciales rechazadas")}
	case resp.StatusCode >= 300:
		return &Error{Op: "connect", Status: resp.StatusCode, CanRetry: true, Err: fmt.Errorf("estado %d", resp.StatusCode)}
	}
	return nil
}

// ---- table query surface ----

type Record map[string]any

type QueryOptions struct {
	Where map[string]any `json:"where,omitempty"`
	Limit int            `json:"limit,omitempty"`
}

func (c *Client) Query(ctx context.Context, table string, opts QueryOptions) ([]Record, error) {
	var out struct {
		Records []Record `json:"records"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/projects/%s/tables/%s/query", c.ProjectID, table), opts, &out)
	if err != nil {
		return nil, err
	}
	return out.Records, nil
}

func (c *Client) Create(ctx context.Context, table string, rec Record) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/projects/%s/tables/%s/records", c.ProjectID, table), rec, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, table string, id uint, rec Record) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/v1/projects/%s/tables/%s/records/%d", c.ProjectID, table, id), rec, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, table string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/projects/%s/tables/%s/records/%d", c.ProjectID, table, id), nil, nil)
}

func (c *Client) FindByID(ctx context.Context, table string, id uint) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/projects/%s/tables/%s/records/%d", c.ProjectID, table, id), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FindWhere(ctx context.Context, table, field string, value any) ([]Record, error) {
	return c.Query(ctx, table, QueryOptions{Where: map[string]any{field: value}})
}

// do runs one table-API call, initializing the connection lazily. Errors are
// logged and returned, never swallowed.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.Initialize(ctx); err != nil {
		return err
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: method + " " + path, CanRetry: false, Err: err}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return &Error{Op: method + " " + path, CanRetry: false, Err: err}
	}
	req.Header.Set("X-Apper-Public-Key", c.PublicKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("apper: %s %s: %v", method, path, err)
		return &Error{Op: method + " " + path, CanRetry: true, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("apper: %s %s: read body: %v", method, path, err)
		return &Error{Op: method + " " + path, CanRetry: true, Err: err}
	}

	if resp.StatusCode >= 300 {
		// surface the exact API error body
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := string(respBytes)
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		e := &Error{
			Op:       method + " " + path,
			Status:   resp.StatusCode,
			CanRetry: resp.StatusCode >= 500,
			Err:      errors.New(msg),
		}
		log.Printf("apper: %v", e)
		return e
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			log.Printf("apper: %s %s: decode: %v", method, path, err)
			return &Error{Op: method + " " + path, CanRetry: false, Err: err}
		}
	}
	return nil
}
