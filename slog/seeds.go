package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.SeedDiscoverer = (*LoggingSeedDiscoverer)(nil)

// LoggingSeedDiscoverer wraps a SeedDiscoverer with logging.
type LoggingSeedDiscoverer struct {
	next   sfcrawl.SeedDiscoverer
	logger *slog.Logger
}

// NewLoggingSeedDiscoverer creates a new LoggingSeedDiscoverer.
func NewLoggingSeedDiscoverer(next sfcrawl.SeedDiscoverer, logger *slog.Logger) *LoggingSeedDiscoverer {
	return &LoggingSeedDiscoverer{next: next, logger: logger}
}

// DiscoverSeeds delegates to the wrapped discoverer and logs the operation.
func (d *LoggingSeedDiscoverer) DiscoverSeeds(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("sitemap seed discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverSeeds(ctx, baseURL)
}
