package sfcrawl

import "context"

// SeedDiscoverer expands a product's seed list from a site's sitemap.
// Sitemap seeding is optional; the coordinator falls back to the manifest
// URLs alone when discovery finds nothing.
type SeedDiscoverer interface {
	// DiscoverSeeds finds URLs from the site's sitemap, checking
	// robots.txt for sitemap directives and falling back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	// Returns an empty slice (not nil) when no sitemap exists.
	DiscoverSeeds(ctx context.Context, baseURL string) ([]string, error)
}
