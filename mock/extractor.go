package mock

import cleantext "github.com/Mjeezuz/clean-text-extractor"

var _ cleantext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cleantext.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, rawHTML string) (*cleantext.Result, error)
}

func (e *Extractor) Extract(pageURL, rawHTML string) (*cleantext.Result, error) {
	return e.ExtractFn(pageURL, rawHTML)
}
