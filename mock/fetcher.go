package mock

import (
	"context"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
)

var _ cleantext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cleantext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
