// Package fs provides file-based output for extracted text.
package fs

import (
	"context"
	"os"
	"path/filepath"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
)

// Ensure Writer implements cleantext.OutputWriter at compile time.
var _ cleantext.OutputWriter = (*Writer)(nil)

// Writer writes the output document to a single file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write stores the text at the configured path, creating parent directories
// as needed, and returns the resolved absolute path. Returns EOUTPUT when
// the destination is unwritable.
func (w *Writer) Write(ctx context.Context, text string) (string, error) {
	dir := filepath.Dir(w.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", cleantext.Errorf(cleantext.EOUTPUT, "create directory %s: %v", dir, err)
		}
	}

	if err := os.WriteFile(w.path, []byte(text), 0644); err != nil {
		return "", cleantext.Errorf(cleantext.EOUTPUT, "write %s: %v", w.path, err)
	}

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return w.path, nil
	}
	return abs, nil
}
