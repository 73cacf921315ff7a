package cleantext

import "context"

// Service glues a Fetcher and an Extractor into the single-call contract:
// given a URL, return the annotated text document. Each call builds and owns
// its own document tree, so concurrent calls are safe.
type Service struct {
	Fetcher   Fetcher
	Extractor Extractor
}

// Text fetches url and returns the layout-annotated plain-text document
// (header block, blank line, normalized body). Fetch failures propagate
// unmodified; malformed HTML never fails.
func (s *Service) Text(ctx context.Context, url string) (string, error) {
	raw, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	res, err := s.Extractor.Extract(url, raw)
	if err != nil {
		return "", err
	}

	return Format(res), nil
}
