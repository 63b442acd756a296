package zenodo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Zenodo REST API base URL.
	BaseURL = "https://zenodo.org/api"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit stays well under Zenodo's published guest limit of
	// 60 requests per minute.
	RateLimit = 1.0
)

// Client is a rate-limited HTTP client for the Zenodo records API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	token      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets a Zenodo personal access token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Zenodo API client. It reads ZENODO_TOKEN from
// the environment for authenticated requests.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if token := os.Getenv("ZENODO_TOKEN"); token != "" {
		c.token = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetRecord fetches the deposition record for a Zenodo DOI. The DOI may
// be bare ("10.5281/zenodo.1234") or a full doi.org URL.
func (c *Client) GetRecord(ctx context.Context, doi string) (*Record, error) {
	id, err := RecordID(doi)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/records/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "doi2cff")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success
	case http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("%w: record %s", ErrNotFound, id)
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, RecordID: id}
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decoding record %s: %v", ErrInvalidResponse, id, err)
	}

	return &record, nil
}
