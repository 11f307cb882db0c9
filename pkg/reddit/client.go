// Package reddit is a minimal client for the public Reddit JSON API,
// covering the listing and comment-tree endpoints the analysis needs.
package reddit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/caching"
)

// pageSize is the largest page the listing endpoints serve per request.
const pageSize = 100

type Client struct {
	client    *http.Client
	userAgent string
	baseURL   string
	cache     *caching.Cache
}

// New creates a client identifying itself with userAgent on every request.
// baseURL is normally https://www.reddit.com; tests point it elsewhere.
func New(userAgent, baseURL string) *Client {
	return &Client{
		client:    &http.Client{},
		userAgent: userAgent,
		baseURL:   baseURL,
	}
}

// WithCache reuses previously fetched response bodies younger than the
// cache TTL instead of refetching.
func (c *Client) WithCache(cache *caching.Cache) *Client {
	c.cache = cache
	return c
}

// get fetches one API path and returns the raw response body. A non-OK
// status becomes a *models.FetchError.
func (c *Client) get(path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(u); ok {
			return body, nil
		}
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.FetchError{URL: u, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.cache != nil {
		_ = c.cache.Set(u, body) // a failed cache write only costs a refetch
	}
	return body, nil
}

func (c *Client) getJSON(path string, query url.Values, v interface{}) error {
	body, err := c.get(path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// listingPage fetches one page of a listing endpoint.
func (c *Client) listingPage(path string, query url.Values) (*listing, error) {
	var page thing
	if err := c.getJSON(path, query, &page); err != nil {
		return nil, err
	}
	return page.listing()
}
