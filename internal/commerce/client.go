// internal/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
)

// Client is a typed HTTP client for the commerce backend API. It is the
// only place in the service that talks to the backend; everything above it
// works on already-decoded, minor-unit data.
type Client struct {
	baseURL        string
	publishableKey string
	region         string
	httpClient     *http.Client
}

// APIError represents a non-2xx response from the commerce API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce API returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a commerce API 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a new commerce API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.Commerce.BaseURL, "/"),
		publishableKey: cfg.Commerce.PublishableKey,
		region:         cfg.Commerce.Region,
		httpClient: &http.Client{
			Timeout: cfg.Commerce.Timeout,
		},
	}
}

// do performs a single request against the commerce API and decodes the
// JSON response into out. An empty bearer token means an anonymous call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, bearerToken string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	// Price and inventory bearing responses must never be served stale
	req.Header.Set("Cache-Control", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.publishableKey != "" {
		req.Header.Set("X-Publishable-Api-Key", c.publishableKey)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode commerce API response: %w", err)
		}
	}

	return nil
}

func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "unknown error"
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return "unknown error"
}
