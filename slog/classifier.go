// Package slog provides logging decorators for the crawl interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging for page-type
// decisions.
type LoggingClassifier struct {
	next   sfcrawl.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next sfcrawl.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the decision.
func (c *LoggingClassifier) Classify(url string, html string) sfcrawl.PageType {
	begin := time.Now()
	pageType := c.next.Classify(url, html)
	c.logger.Debug("page classified",
		"url", url,
		"page_type", pageType,
		"duration", time.Since(begin),
	)
	return pageType
}
