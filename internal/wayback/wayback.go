/*
Package wayback looks up archived copies of NVD detail pages.
*/
package wayback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vigo/cvelookup/internal/httpclient"
)

// Response represents Wayback response.
type Response struct {
	ArchivedSnapshots struct {
		Closest struct {
			Status    string `json:"status"`
			Timestamp string `json:"timestamp"`
			URL       string `json:"url"`
			Available bool   `json:"available"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// defaults.
const (
	DefaultEndpoint = "https://archive.org/wayback/available"
	nvdDetailURL    = "https://nvd.nist.gov/vuln/detail/"
)

// sentinel errors.
var (
	ErrSnapshotNotFound = errors.New("wayback snapshot not found")
	ErrValueRequired    = errors.New("value required")
)

// Client queries the availability API.
type Client struct {
	doer     httpclient.Doer
	Endpoint string
}

// Option represents option function type.
type Option func(*Client) error

// WithEndpoint overrides the availability endpoint.
func WithEndpoint(s string) Option {
	return func(c *Client) error {
		if s == "" {
			return fmt.Errorf("%w, endpoint can not be empty string", ErrValueRequired)
		}

		c.Endpoint = s

		return nil
	}
}

// New instantiates wayback client.
func New(doer httpclient.Doer, options ...Option) (*Client, error) {
	if doer == nil {
		return nil, fmt.Errorf("%w, http client can not be nil", ErrValueRequired)
	}

	client := &Client{doer: doer, Endpoint: DefaultEndpoint}
	for _, option := range options {
		if err := option(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// DetailURL returns the NVD web page of a CVE.
func DetailURL(cveID string) string {
	return nvdDetailURL + url.PathEscape(cveID)
}

// Fetch returns the closest archived snapshot url of target.
func (c *Client) Fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?url="+url.QueryEscape(target), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	var wbResponse Response

	if err = json.NewDecoder(resp.Body).Decode(&wbResponse); err != nil {
		return "", err
	}

	if wbResponse.ArchivedSnapshots.Closest.Available && wbResponse.ArchivedSnapshots.Closest.Status == "200" {
		return wbResponse.ArchivedSnapshots.Closest.URL, nil
	}

	return "", ErrSnapshotNotFound
}

// FetchCVE returns the closest archived snapshot of the CVE's NVD page.
func (c *Client) FetchCVE(ctx context.Context, cveID string) (string, error) {
	return c.Fetch(ctx, DetailURL(cveID))
}
