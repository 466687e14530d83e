// Package client is the HTTP side of the console: a thin typed client
// for the admin API that plays the persistence-collaborator role for
// the console packages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"transit_admin/internal/config"
)

// Client is a simple HTTP client for the admin console API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewFromEnv builds a client from ADMIN_API_URL, loading .env first the
// way the server config does.
func NewFromEnv() *Client {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}
	return New(config.GetEnv("ADMIN_API_URL", "http://localhost:8080"))
}

// apiError is the {"error": "..."} body the API answers failures with.
type apiError struct {
	Error string `json:"error"`
}

// do performs one request. A non-nil body is sent as JSON; a non-nil
// out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var ae apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&ae); decodeErr == nil && ae.Error != "" {
			return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, path, ae.Error)
		}
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}
