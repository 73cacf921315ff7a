package mock

import (
	"context"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
)

var _ cleantext.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of cleantext.OutputWriter.
type OutputWriter struct {
	WriteFn func(ctx context.Context, text string) (string, error)
}

func (w *OutputWriter) Write(ctx context.Context, text string) (string, error) {
	return w.WriteFn(ctx, text)
}
