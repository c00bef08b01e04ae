// Package api is the REST client for the library backend. Every endpoint
// returns its entity wrapped in a response-key object (e.g. {"game": {...}}),
// and all list endpoints follow the {"<resource>": [...]} convention.
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
	"time"
)

const (
	headerAuthToken      = "X-Auth-Token"
	headerTwitchClientID = "X-Twitch-Client-Id"

	// bound on the long-running endpoints (recommended sections,
	// category refresh)
	longRequestTimeout = 90 * time.Second
)

type Config struct {
	BaseURL        string
	AuthToken      string
	TwitchClientID string

	// optional; defaults to http.DefaultClient
	HTTPClient *http.Client
}

type Client struct {
	baseURL        string
	authToken      string
	twitchClientID string
	http           *http.Client
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		authToken:      cfg.AuthToken,
		twitchClientID: cfg.TwitchClientID,
		http:           httpClient,
	}
}

// apiError carries the server's message for a non-2xx response.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsConflict reports whether err is a 409 response, the expected outcome
// of best-effort cleanup calls.
func IsConflict(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

func (c *Client) setHeaders(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set(headerAuthToken, c.authToken)
	}
	if c.twitchClientID != "" {
		req.Header.Set(headerTwitchClientID, c.twitchClientID)
	}
}

// do runs one JSON round-trip. body is encoded as JSON when non-nil; the
// response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doLong is do with the 90s bound for endpoints that may take a while.
func (c *Client) doLong(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, longRequestTimeout)
	defer cancel()
	return c.do(ctx, method, path, body, out)
}

func readError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wire struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(data, &wire); err == nil {
		message = wire.Error
		if message == "" {
			message = wire.Message
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(data))
	}

	return &apiError{Status: resp.StatusCode, Message: message}
}
