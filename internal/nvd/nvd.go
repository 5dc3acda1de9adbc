/*
Package nvd implements a client for the NVD CVE API 2.0.
*/
package nvd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vigo/cvelookup/internal/httpclient"
	"github.com/vigo/cvelookup/internal/version"
)

// defaults.
const (
	DefaultBaseURL = "https://services.nvd.nist.gov/rest/json/cves/2.0"
	APIKeyHeader   = "apiKey"
)

// sentinel errors.
var (
	ErrValueRequired    = errors.New("value required")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Client fetches CVE records.
type Client struct {
	doer      httpclient.Doer
	BaseURL   string
	APIKey    string
	UserAgent string
}

// Option represents option function type.
type Option func(*Client) error

// WithBaseURL overrides the API endpoint.
func WithBaseURL(s string) Option {
	return func(c *Client) error {
		if s == "" {
			return fmt.Errorf("%w, base url can not be empty string", ErrValueRequired)
		}

		c.BaseURL = s

		return nil
	}
}

// WithAPIKey sets the apiKey header value. An empty key keeps the client
// unauthenticated.
func WithAPIKey(s string) Option {
	return func(c *Client) error {
		c.APIKey = s
		return nil
	}
}

// WithUserAgent sets User-Agent header.
func WithUserAgent(s string) Option {
	return func(c *Client) error {
		if s == "" {
			return fmt.Errorf("%w, user agent can not be empty string", ErrValueRequired)
		}

		c.UserAgent = s

		return nil
	}
}

// New instantiates new NVD client.
func New(doer httpclient.Doer, options ...Option) (*Client, error) {
	if doer == nil {
		return nil, fmt.Errorf("%w, http client can not be nil", ErrValueRequired)
	}

	client := &Client{
		doer:      doer,
		BaseURL:   DefaultBaseURL,
		UserAgent: "cvelookup/" + version.Version,
	}

	for _, option := range options {
		if err := option(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// URL returns the request url for the given CVE ID.
func (c *Client) URL(cveID string) string {
	return c.BaseURL + "?cveId=" + url.QueryEscape(cveID)
}

// Fetch requests a single CVE ID. Any non-2xx status is an error.
func (c *Client) Fetch(ctx context.Context, cveID string) (*Response, error) {
	endpoint := c.URL(cveID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set(APIKeyHeader, c.APIKey)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s for url: %s", ErrUnexpectedStatus, resp.Status, endpoint)
	}

	var response Response
	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &response, nil
}
