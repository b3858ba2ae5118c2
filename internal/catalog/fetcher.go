package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultFetchTimeout is the default timeout for the catalog request.
const DefaultFetchTimeout = 10 * time.Second

// maxBodyBytes bounds the response size; the real catalog is well under 1 MiB.
const maxBodyBytes = 16 << 20

// Fetcher retrieves raw bytes over HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Ensure HTTPFetcher implements Fetcher at compile time.
var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher issues plain GET requests.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithHTTPClient replaces the underlying client. The client's own Timeout
// takes precedence over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// NewHTTPFetcher creates a new HTTP-based Fetcher.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the response body of a GET to url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	return body, nil
}
