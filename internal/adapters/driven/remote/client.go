// Package remote provides the HTTP adapter for the remote search service.
// It implements both the SearchClient and Summarizer driven ports.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/sercha-finder/internal/core/domain"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.SearchClient = (*Client)(nil)
	_ driven.Summarizer   = (*Client)(nil)
)

// HeaderRequestID carries a per-request identifier for correlating logs.
const HeaderRequestID = "X-Request-ID"

// Endpoint paths relative to the base URL.
const (
	SearchPath    = "/search"
	SummarizePath = "/summarize"
)

// Config holds configuration for the remote client.
type Config struct {
	// BaseURL is the service root (default: http://127.0.0.1:8000).
	BaseURL string

	// Timeout bounds a single request (default: 30s).
	Timeout time.Duration

	// RateLimit caps outgoing requests per second. Zero disables the limit.
	RateLimit float64
}

// ConfigFromSettings maps application settings onto a client config.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		BaseURL:   s.BaseURL,
		Timeout:   s.Timeout,
		RateLimit: s.RateLimit,
	}
}

// Client talks to the search and summary endpoints.
// Each call is a single attempt; there are no retries.
type Client struct {
	limiter *rate.Limiter

	mu      sync.RWMutex
	client  *http.Client
	baseURL string
}

// summarizeRequest is the /summarize request body.
type summarizeRequest struct {
	Text string `json:"text"`
}

// summarizeResponse is the /summarize response body.
type summarizeResponse struct {
	Summary string `json:"summary"`
}

// NewClient creates a new remote client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// BaseURL returns the service root currently in use.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points subsequent requests at a new service root.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Timeout returns the per-request timeout currently in use.
func (c *Client) Timeout() time.Duration {
	return c.httpClient().Timeout
}

// SetTimeout applies to requests started after the call; in-flight
// requests keep the client they were sent with.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = &http.Client{Timeout: timeout}
}

func (c *Client) httpClient() *http.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}

// Apply updates the client from reloaded settings.
func (c *Client) Apply(s domain.APISettings) {
	c.SetBaseURL(s.BaseURL)
	c.SetTimeout(s.Timeout)
	if s.RateLimit > 0 {
		c.limiter.SetLimit(rate.Limit(s.RateLimit))
	} else {
		c.limiter.SetLimit(rate.Inf)
	}
}

// Search issues GET /search?query=<query> and returns the decoded results.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := c.BaseURL() + SearchPath + "?" + url.Values{"query": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return body.Results, nil
}

// Summarize issues POST /summarize with {"text": text} and returns the summary.
// A non-success response body is returned verbatim as the error message.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	jsonBody, err := json.Marshal(summarizeRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL()+SummarizePath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var body summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return body.Summary, nil
}

// do waits for the limiter, tags the request and sends it.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	logger.Debug("%s %s -> %d (%s, request %s)",
		req.Method, req.URL.Path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)
	return resp, nil
}

// checkStatus converts a non-2xx response into a *domain.RemoteError.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RemoteError{StatusCode: resp.StatusCode}
	}
	return &domain.RemoteError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
