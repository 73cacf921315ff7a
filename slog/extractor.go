package slog

import (
	"log/slog"
	"time"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
)

// Ensure LoggingExtractor implements cleantext.Extractor.
var _ cleantext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operation logging.
type LoggingExtractor struct {
	next   cleantext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next cleantext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(pageURL, rawHTML string) (res *cleantext.Result, err error) {
	defer func(begin time.Time) {
		bodyLen := 0
		if res != nil {
			bodyLen = len(res.Body)
		}
		e.logger.Info("extract",
			"url", pageURL,
			"in_bytes", len(rawHTML),
			"out_bytes", bodyLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(pageURL, rawHTML)
}
