// Package http provides an HTTP-based implementation of cleantext.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 20 * time.Second

// DefaultUserAgent is sent with every request. A realistic desktop
// user-agent reduces bot-blocking on sites that reject generic clients.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CleanTextBot/2.0; +https://github.com/Mjeezuz/clean-text-extractor)"

// Ensure Fetcher implements cleantext.Fetcher at compile time.
var _ cleantext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML from URLs with a single GET request.
// There are no retries: connection and status failures surface immediately.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Returns ENETWORK on connection/DNS failure or timeout expiry, and
// EHTTPSTATUS (carrying the status code) on a non-2xx response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", cleantext.Errorf(cleantext.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", cleantext.Errorf(cleantext.ENETWORK, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", cleantext.HTTPStatusErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", cleantext.Errorf(cleantext.ENETWORK, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
