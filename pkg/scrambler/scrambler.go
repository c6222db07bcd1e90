// Package scrambler provides a client for an external scramble-generation
// service speaking the csTimer-style HTTP API.
package scrambler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/speedsolve/cubecomp/internal/logger"
)

// Client defines the interface for scramble generation
type Client interface {
	// Scramble generates a single scramble sequence of the given type.
	// A length of 0 requests the service default.
	Scramble(ctx context.Context, scrambleType string, length int) (string, error)
	// ScrambleBatch generates count scrambles of the given type
	ScrambleBatch(ctx context.Context, scrambleType string, length, count int) ([]string, error)
	// BaseURL returns the configured service base URL
	BaseURL() string
	// SetBaseURL updates the service base URL
	SetBaseURL(url string)
}

// scrambleResponse is the response from the scramble endpoint
type scrambleResponse struct {
	Scrambles []string `json:"scrambles"`
	Error     string   `json:"error"`
}

// HTTPClient is a real HTTP client for the scramble service
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewHTTPClient creates a new scramble service client
func NewHTTPClient(baseURL string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// NewHTTPClientWithHTTPClient creates a scramble service client with a custom http.Client
func NewHTTPClientWithHTTPClient(baseURL string, httpClient *http.Client, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// BaseURL returns the configured service base URL
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// SetBaseURL updates the service base URL
func (c *HTTPClient) SetBaseURL(url string) {
	c.baseURL = url
}

// Scramble generates a single scramble sequence of the given type
func (c *HTTPClient) Scramble(ctx context.Context, scrambleType string, length int) (string, error) {
	scrambles, err := c.ScrambleBatch(ctx, scrambleType, length, 1)
	if err != nil {
		return "", err
	}
	return scrambles[0], nil
}

// ScrambleBatch generates count scrambles of the given type
func (c *HTTPClient) ScrambleBatch(ctx context.Context, scrambleType string, length, count int) ([]string, error) {
	params := url.Values{}
	params.Set("type", scrambleType)
	params.Set("count", strconv.Itoa(count))
	if length > 0 {
		params.Set("len", strconv.Itoa(length))
	}

	reqURL := fmt.Sprintf("%s/api/v0/scramble?%s", c.baseURL, params.Encode())

	c.log.Debug("scramble request", "method", "GET", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scramble service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("scramble response", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scramble service returned status %d: %s", resp.StatusCode, string(body))
	}

	var response scrambleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("scramble service error: %s", response.Error)
	}
	if len(response.Scrambles) < count {
		return nil, fmt.Errorf("scramble service returned %d scrambles, wanted %d", len(response.Scrambles), count)
	}

	return response.Scrambles[:count], nil
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
