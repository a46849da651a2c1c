// Package api is the HTTP client for the LiteKite backend REST API and its
// companion AI-analysis service. One configured Client is shared by every
// subcommand; its transport attaches the session's bearer token and clears
// the session on any unauthorized response, process-wide.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/litekite/litekite"
)

// DefaultBaseURL is the hosted LiteKite backend.
const DefaultBaseURL = "https://litekitebackend.vercel.app/api"

// DefaultAIBaseURL is the hosted AI-analysis service.
const DefaultAIBaseURL = "https://aisupport-five.vercel.app/api"

// ErrUnauthorized marks the invalid/expired/missing token condition. The
// transport has already cleared the session by the time a caller sees it.
var ErrUnauthorized = errors.New("unauthorized. Please sign in again with 'litekite login'")

// ErrValidation marks input rejected client-side, before any request is sent.
var ErrValidation = errors.New("invalid input")

// StatusError is a non-2xx backend response carrying the server's message
// verbatim when it provided one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(e.Code))
}

// Client talks to the backend and the AI service.
type Client struct {
	base   string
	aiBase string
	hc     *http.Client
	store  *litekite.SessionStore
}

// New returns a client for the given base URLs backed by the session store.
// The unauthorized interceptor is installed here, exactly once per client.
func New(base, aiBase string, store *litekite.SessionStore) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if aiBase == "" {
		aiBase = DefaultAIBaseURL
	}
	c := &Client{
		base:   strings.TrimRight(base, "/"),
		aiBase: strings.TrimRight(aiBase, "/"),
		store:  store,
	}
	c.hc = &http.Client{Transport: &sessionTransport{base: http.DefaultTransport, store: store}}
	return c
}

// Store exposes the session store backing this client.
func (c *Client) Store() *litekite.SessionStore { return c.store }

// Authenticated reports whether a session token is persisted.
func (c *Client) Authenticated() bool { return c.store.Authenticated() }

// sessionTransport attaches the stored Authorization header to every request
// and logs out on any unauthorized response, regardless of the caller. The
// clear is idempotent, so firing together with per-call handling is safe.
type sessionTransport struct {
	base  http.RoundTripper
	store *litekite.SessionStore
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if token, err := t.store.Token(); err == nil {
			req.Header.Set("Authorization", token)
		}
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode == http.StatusUnauthorized {
		if cerr := t.store.Clear(); cerr != nil {
			log.Printf("session clear err (ignored): %v", cerr)
		}
	}
	return resp, nil
}

// jwget performs a GET against the backend and unmarshals the JSON response
// into data. A nil data discards the body.
func (c *Client) jwget(ctx context.Context, path string, data any) error {
	return c.do(ctx, http.MethodGet, c.base+path, nil, data)
}

// jwpost performs a JSON POST against the backend and unmarshals the
// response into data. A nil data discards the body.
func (c *Client) jwpost(ctx context.Context, path string, body, data any) error {
	return c.do(ctx, http.MethodPost, c.base+path, body, data)
}

func (c *Client) do(ctx context.Context, method, addr string, body, data any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, addr, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", addr, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Message: serverMessage(raw)}
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(raw, data)
}

// serverMessage extracts the backend's error text when present.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
