// Package remote talks to the (optional) remote library service: it
// fetches cover images and mirrors album mutations.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the remote collaborator the library service depends on.
//
// FetchImage downloads the cover image for an opaque reference.
// PostMutation notifies the remote of an album mutation; the library
// treats it as best-effort and swallows any error.
type Client interface {
	FetchImage(ctx context.Context, ref string) ([]byte, error)
	PostMutation(ctx context.Context, path, body string) error
}

// HTTPClient implements Client over plain HTTP.
//
// Cover references are resolved against the configured base URL unless
// they already carry a scheme:
//
//	c := remote.NewHTTPClient("https://covers.example.com")
//	data, err := c.FetchImage(ctx, "covers/best-of-bowie.jpg")
//	// GET https://covers.example.com/covers/best-of-bowie.jpg
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewHTTPClient creates an HTTP client for the given base URL.
//
// The client is configured with:
//   - 30 second timeout
//   - "coverstrip" User-Agent header
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: "coverstrip",
	}
}

// FetchImage performs a GET for the resolved reference URL and returns
// the response body as bytes.
//
// Returns an error if the request fails, the response status is not
// 200 OK, or reading the body fails.
func (c *HTTPClient) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(ref), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// PostMutation POSTs a mutation notification to the given path under
// the base URL. Any 2xx status is success.
func (c *HTTPClient) PostMutation(ctx context.Context, path, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path), strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// resolve turns an opaque reference into a fetchable URL. References
// that already carry a scheme are used verbatim.
func (c *HTTPClient) resolve(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	return c.baseURL + "/" + strings.TrimPrefix(ref, "/")
}
