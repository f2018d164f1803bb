// Package http provides the HTTP implementation of dailystoic.Fetcher
// for retrieving the source page body as plain text.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ktatarski/dailystoic"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements dailystoic.Fetcher at compile time.
var _ dailystoic.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies using plain HTTP requests. The source is
// treated as line-oriented text; no HTML parsing happens here or anywhere
// downstream.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.EUNAVAILABLE, "build request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", dailystoic.Errorf(dailystoic.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.EUNAVAILABLE, "read body of %s: %v", url, err)
	}

	return string(body), nil
}
