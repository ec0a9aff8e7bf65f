package library

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CatalogFetcher defines the interface for retrieving the video catalog.
// This interface is implemented by *Client and can be used for testing.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]Video, error)
}

// Ensure Client implements CatalogFetcher at compile time.
var _ CatalogFetcher = (*Client)(nil)

// Client talks to the library HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultLibraryAddr = "127.0.0.1:8000"
	defaultUserAgent   = "marquee/0.1"
	requestTimeout     = 10 * time.Second
)

// NewClient builds a Client for the given library address. The address may be
// a bare host:port or a full URL; scheme defaults to http.
func NewClient(addr string) (*Client, error) {
	base, err := parseBaseURL(addr)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCatalog retrieves the current video catalog. A malformed payload is an
// error just like a transport failure; callers treat both as a failed cycle.
func (c *Client) FetchCatalog(ctx context.Context) ([]Video, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CatalogResponse
	if err := c.do(ctx, http.MethodGet, "/api/videos", &payload); err != nil {
		return nil, err
	}
	return payload.Videos, nil
}

// ResolveURL turns a catalog entry URL into an absolute URL. The server hands
// out paths like /videos/name.mp4; absolute URLs pass through unchanged.
func (c *Client) ResolveURL(raw string) string {
	rel, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if rel.IsAbs() {
		return raw
	}
	return c.baseURL.ResolveReference(rel).String()
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(addr string) (*url.URL, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		trimmed = defaultLibraryAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse library url %q: %w", addr, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
