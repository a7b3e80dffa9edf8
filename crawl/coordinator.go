// Package crawl implements the crawling core: the per-product frontier,
// worker state machine, and the coordinator that runs one worker pool per
// product under configured depth and page ceilings.
package crawl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jkoenig72/sfcrawl"
	"golang.org/x/sync/errgroup"
)

// Coordinator reads the start-link manifest, runs one fixed-size worker
// pool per product, enforces ceilings, and aggregates metrics and logs
// on completion. Products are isolated: an unreachable seed or a failed
// pool never prevents other products from crawling.
type Coordinator struct {
	Config     *sfcrawl.Config
	Sessions   sfcrawl.SessionFactory
	Classifier sfcrawl.Classifier
	Extractors sfcrawl.ExtractorRegistry
	Renderer   sfcrawl.Renderer
	Writer     sfcrawl.ArtifactWriter
	SkipLog    sfcrawl.SkipLogger
	Summary    sfcrawl.SummaryWriter
	Limiter    sfcrawl.DomainLimiter
	Logger     *slog.Logger

	// Seeds optionally expands each product's manifest URLs from the
	// site's sitemap before crawling.
	Seeds sfcrawl.SeedDiscoverer

	// RetryDelays overrides the fetch backoff schedule. Tests use zero
	// delays.
	RetryDelays []time.Duration
}

// Run crawls every product in the manifest and returns per-product
// metrics snapshots. It returns an error only for fatal conditions:
// an invalid manifest or a browser driver no product can start with.
// The summary log is written even when some products fail entirely.
func (c *Coordinator) Run(ctx context.Context, manifest *sfcrawl.Manifest) ([]sfcrawl.MetricsSnapshot, error) {
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}

	// Preflight: if no session can be opened at all, nothing can crawl.
	probe, err := c.Sessions.NewSession()
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EDRIVER, "browser driver unavailable: %v", err)
	}
	_ = probe.Close()

	runID := uuid.NewString()
	date := time.Now().Format("2006-01-02")
	c.Logger.Info("crawl run starting",
		"run_id", runID,
		"products", len(manifest.Products),
		"workers_per_product", c.Config.WorkersPerProduct,
	)

	var (
		mu        sync.Mutex
		snapshots []sfcrawl.MetricsSnapshot
	)

	var g errgroup.Group
	for _, seeds := range manifest.Products {
		g.Go(func() error {
			snap := c.runProduct(ctx, seeds, date)
			mu.Lock()
			snapshots = append(snapshots, snap)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if c.Summary != nil {
		if err := c.Summary.WriteSummary(runID, snapshots); err != nil {
			c.Logger.Error("writing summary", "err", err)
		}
	}

	c.Logger.Info("crawl run finished", "run_id", runID)
	return snapshots, nil
}

// runProduct crawls one product to completion and returns its metrics.
func (c *Coordinator) runProduct(ctx context.Context, seeds sfcrawl.ProductSeeds, date string) sfcrawl.MetricsSnapshot {
	product := seeds.Product
	logger := c.Logger.With("product", product)

	metrics := sfcrawl.NewMetrics(product)
	frontier := NewFrontier(product, &c.Config.Scope, c.Config.MaxLinkLevel, metrics)
	budget := NewPageBudget(c.Config.MaxPagesPerProduct, func() {
		logger.Info("page ceiling reached, closing frontier",
			"max_pages", c.Config.MaxPagesPerProduct,
		)
		metrics.PageCeilingHit()
		frontier.Close()
	})

	// Seeding must finish before workers start: an empty open frontier
	// with no in-flight tasks reads as "done".
	seeded := 0
	for _, seedURL := range c.seedURLs(ctx, seeds, logger) {
		if frontier.Offer(sfcrawl.CrawlTask{URL: seedURL, Depth: 0, Product: product, Referrer: seedURL}) {
			seeded++
		} else {
			logger.Warn("seed rejected", "url", seedURL)
		}
	}
	if seeded == 0 {
		logger.Error("no seeds accepted, skipping product")
		return metrics.Snapshot()
	}

	var wg sync.WaitGroup
	for i := 0; i < c.Config.WorkersPerProduct; i++ {
		w := &Worker{
			ID:          i,
			Product:     product,
			Category:    "Product Documentation: " + product,
			Date:        date,
			Frontier:    frontier,
			Sessions:    c.Sessions,
			Classifier:  c.Classifier,
			Extractors:  c.Extractors,
			Renderer:    c.Renderer,
			Writer:      c.Writer,
			SkipLog:     c.SkipLog,
			Limiter:     c.Limiter,
			Metrics:     metrics,
			Budget:      budget,
			Logger:      c.Logger,
			RetryDelays: c.RetryDelays,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.runWorker(ctx, w, logger)
		}()
	}
	wg.Wait()

	snap := metrics.Snapshot()
	logger.Info("product crawl complete",
		"pages_written", snap.PagesWritten,
		"pages_fetched", snap.PagesFetched,
		"links_found", snap.LinksFound,
		"errors", snap.TotalErrors(),
		"max_depth", snap.MaxDepthReached,
		"elapsed", snap.Elapsed,
	)
	return snap
}

// seedURLs returns the manifest seeds for a product, expanded from the
// site's sitemap when a seed discoverer is configured. Sitemap failures
// degrade to the manifest URLs alone.
func (c *Coordinator) seedURLs(ctx context.Context, seeds sfcrawl.ProductSeeds, logger *slog.Logger) []string {
	urls := append([]string(nil), seeds.URLs...)
	if c.Seeds == nil {
		return urls
	}

	for _, seedURL := range seeds.URLs {
		discovered, err := c.Seeds.DiscoverSeeds(ctx, seedURL)
		if err != nil {
			logger.Warn("sitemap seed discovery failed", "url", seedURL, "err", err)
			continue
		}
		if len(discovered) > 0 {
			logger.Info("sitemap seeds discovered", "url", seedURL, "count", len(discovered))
			urls = append(urls, discovered...)
		}
	}
	return urls
}

// runWorker runs a worker, restarting it once if it crashes outside the
// page-processing path. A second crash retires the worker and the pool
// proceeds with one fewer.
func (c *Coordinator) runWorker(ctx context.Context, w *Worker, logger *slog.Logger) {
	for attempt := 0; attempt < 2; attempt++ {
		err := runSafely(ctx, w)
		if err == nil {
			return
		}
		if attempt == 0 {
			logger.Error("worker crashed, restarting", "worker", w.ID, "err", err)
		} else {
			logger.Error("worker crashed again, retiring", "worker", w.ID, "err", err)
		}
	}
}

// runSafely converts a worker panic into an error so the coordinator can
// apply its restart policy.
func runSafely(ctx context.Context, w *Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = sfcrawl.Errorf(sfcrawl.EINTERNAL, "worker panic: %v", r)
		}
	}()
	return w.Run(ctx)
}
