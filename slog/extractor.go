package slog

import (
	"log/slog"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   sfcrawl.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sfcrawl.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(url string, html string) (doc *sfcrawl.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"extractor", e.next.Name(),
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs,
				"links", len(doc.Links),
				"low_confidence", doc.LowConfidence,
			)
		}
		e.logger.Debug("content extracted", attrs...)
	}(time.Now())
	return e.next.Extract(url, html)
}

// Name returns the wrapped extractor's identifier.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

var _ sfcrawl.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry so every extractor it
// returns logs its extractions.
type LoggingRegistry struct {
	next   sfcrawl.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sfcrawl.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the extractor for a page type, wrapped with logging.
func (r *LoggingRegistry) Get(pageType sfcrawl.PageType) sfcrawl.Extractor {
	return NewLoggingExtractor(r.next.Get(pageType), r.logger)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(pageType sfcrawl.PageType, extractor sfcrawl.Extractor) {
	r.next.Register(pageType, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []sfcrawl.PageType {
	return r.next.List()
}
