package cleantext

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// The context controls timeout and cancellation. Failures are reported
	// immediately with no retries: ENETWORK for connection/DNS errors,
	// EHTTPSTATUS for non-2xx responses.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
