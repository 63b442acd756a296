// Package csl fetches CSL-JSON bibliographic metadata for arbitrary DOIs
// via doi.org content negotiation.
package csl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DOI resolver used for content negotiation.
	BaseURL = "https://doi.org"

	// ContentType requests CSL-JSON from the resolver.
	ContentType = "application/vnd.citationstyles.csl+json"

	// DefaultTimeout is the default HTTP request timeout. Resolution can
	// involve several redirects to the registration agency.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps the converter polite towards the resolver.
	RateLimit = 2.0
)

// Common errors returned by the CSL client.
var (
	// ErrNotFound indicates the DOI is unknown to the resolver.
	ErrNotFound = errors.New("DOI not found")

	// ErrNoMetadata indicates the registration agency serves no CSL-JSON
	// for the DOI.
	ErrNoMetadata = errors.New("no CSL-JSON metadata available for DOI")

	// ErrNetworkError indicates a connectivity problem.
	ErrNetworkError = errors.New("network error resolving DOI")

	// ErrInvalidResponse indicates an unexpected response body.
	ErrInvalidResponse = errors.New("invalid CSL-JSON response")
)

// Record is a CSL-JSON bibliographic record. Only the fields the
// converter consumes are mapped.
type Record struct {
	Title  string   `json:"title"`
	Author []Author `json:"author"`
}

// Author is a CSL-JSON author entry, either structured (given/family)
// or a single literal display name.
type Author struct {
	Given   string `json:"given"`
	Family  string `json:"family"`
	Literal string `json:"literal"`
}

// Client is a rate-limited client for DOI content negotiation.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

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

// NewClient creates a new CSL-JSON client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetRecord fetches the CSL-JSON record for a DOI.
func (c *Client) GetRecord(ctx context.Context, doi string) (*Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", ContentType)
	req.Header.Set("User-Agent", "doi2cff")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, doi)
	case http.StatusNotAcceptable:
		return nil, fmt.Errorf("%w: %s", ErrNoMetadata, doi)
	default:
		return nil, fmt.Errorf("resolver returned status %d for %s", resp.StatusCode, doi)
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrInvalidResponse, doi, err)
	}

	return &record, nil
}
