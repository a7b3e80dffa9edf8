package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

// Worker is a single thread of execution in a product's pool. It loops
// through fetch, classify, extract, render, and write phases, returning
// to the frontier after every page. A page-level failure is absorbed,
// counted, and logged; it never aborts the crawl.
//
// Each worker exclusively owns one browser session. A session failure is
// repaired by recreating the session once; a second failure retires the
// worker and the pool proceeds without it.
type Worker struct {
	ID       int
	Product  string
	Category string
	Date     string

	Frontier    sfcrawl.URLFrontier
	Sessions    sfcrawl.SessionFactory
	Classifier  sfcrawl.Classifier
	Extractors  sfcrawl.ExtractorRegistry
	Renderer    sfcrawl.Renderer
	Writer      sfcrawl.ArtifactWriter
	SkipLog     sfcrawl.SkipLogger
	Limiter     sfcrawl.DomainLimiter
	Metrics     *sfcrawl.Metrics
	Budget      *PageBudget
	Logger      *slog.Logger
	RetryDelays []time.Duration

	session   sfcrawl.BrowserSession
	recreated bool
}

// Run executes the worker loop until the frontier is done or the context
// is canceled. It returns an error only when no browser session can be
// obtained at all.
func (w *Worker) Run(ctx context.Context) error {
	session, err := w.Sessions.NewSession()
	if err != nil {
		return sfcrawl.Errorf(sfcrawl.EDRIVER, "worker %d: opening session: %v", w.ID, err)
	}
	w.session = session
	defer w.closeSession()

	for {
		task, ok := w.Frontier.Take(ctx)
		if !ok {
			return nil
		}
		w.processTask(ctx, task)
	}
}

// processTask runs one task with the frontier's in-flight accounting
// guaranteed, even if processing panics.
func (w *Worker) processTask(ctx context.Context, task sfcrawl.CrawlTask) {
	defer w.Frontier.TaskDone()
	w.process(ctx, task)
}

func (w *Worker) process(ctx context.Context, task sfcrawl.CrawlTask) {
	logger := w.Logger.With("product", w.Product, "worker", w.ID, "url", task.URL, "depth", task.Depth)

	parsed, err := url.Parse(task.URL)
	if err != nil {
		return
	}
	if err := w.Limiter.Wait(ctx, parsed.Host); err != nil {
		return
	}

	delays := w.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, task.URL, w.fetch, logger, delays)
	if sfcrawl.ErrorCode(err) == sfcrawl.EDRIVER && w.recreateSession(logger) {
		html, err = FetchWithRetryDelays(ctx, task.URL, w.fetch, logger, delays)
	}
	if err != nil {
		w.recordFetchFailure(logger, task.URL, err)
		return
	}

	pageType := w.Classifier.Classify(task.URL, html)

	doc, err := w.Extractors.Get(pageType).Extract(task.URL, html)
	if err != nil {
		w.recordExtractFailure(logger, task.URL, pageType, err)
		return
	}

	w.Metrics.PageFetched(task.Depth)
	if doc.LowConfidence {
		w.Metrics.LowConfidence()
		logger.Warn("low-confidence extraction", "page_type", pageType)
	}

	doc.Meta.Product = w.Product
	doc.Meta.Category = w.Category
	doc.Meta.Depth = task.Depth
	doc.Meta.SourceURL = task.URL
	doc.Meta.Date = w.Date

	artifact, err := w.Renderer.Render(doc)
	if err != nil {
		w.Metrics.Error(sfcrawl.ErrCategoryExtraction)
		logger.Error("render failed", "err", err)
		return
	}

	// The write slot is claimed before writing so the page ceiling can
	// never be exceeded by in-flight pages.
	if w.Budget != nil && !w.Budget.TryAcquire() {
		logger.Info("page ceiling reached, dropping page", "page_type", pageType)
		return
	}

	if err := w.Writer.WriteArtifact(ctx, artifact); err != nil {
		w.Metrics.Error(sfcrawl.ErrCategoryWrite)
		logger.Error("write failed", "err", err)
		return
	}
	w.Metrics.PageWritten()

	w.Metrics.LinksFound(len(doc.Links))
	for _, link := range doc.Links {
		w.Frontier.Offer(sfcrawl.CrawlTask{
			URL:      link.URL,
			Depth:    task.Depth + 1,
			Product:  w.Product,
			Referrer: task.URL,
		})
	}

	logger.Info("page crawled",
		"page_type", pageType,
		"links", len(doc.Links),
		"hash", artifact.ContentHash,
	)
}

// fetch navigates the worker's session, dismisses blocking overlays, and
// returns the rendered DOM.
func (w *Worker) fetch(ctx context.Context, pageURL string) (string, error) {
	if err := w.session.Navigate(ctx, pageURL); err != nil {
		return "", err
	}
	if err := w.session.DismissOverlays(ctx); err != nil {
		return "", err
	}
	return w.session.RenderedHTML(ctx)
}

// recreateSession replaces a failed session, once per worker lifetime.
func (w *Worker) recreateSession(logger *slog.Logger) bool {
	if w.recreated {
		return false
	}
	w.recreated = true

	w.closeSession()
	session, err := w.Sessions.NewSession()
	if err != nil {
		logger.Error("session recreate failed", "err", err)
		return false
	}
	logger.Warn("browser session recreated")
	w.session = session
	return true
}

func (w *Worker) closeSession() {
	if w.session != nil {
		_ = w.session.Close()
		w.session = nil
	}
}

func (w *Worker) recordFetchFailure(logger *slog.Logger, pageURL string, err error) {
	switch sfcrawl.ErrorCode(err) {
	case sfcrawl.EDRIVER:
		w.Metrics.Error(sfcrawl.ErrCategoryDriver)
		w.SkipLog.LogSkip(pageURL, "driver failure: "+sfcrawl.ErrorMessage(err))
	default:
		w.Metrics.Error(sfcrawl.ErrCategoryTransient)
		w.SkipLog.LogSkip(pageURL, "transient fetch failure: "+sfcrawl.ErrorMessage(err))
	}
	logger.Error("fetch failed", "err", err)
}

func (w *Worker) recordExtractFailure(logger *slog.Logger, pageURL string, pageType sfcrawl.PageType, err error) {
	switch sfcrawl.ErrorCode(err) {
	case sfcrawl.ENOTFOUND:
		w.Metrics.Error(sfcrawl.ErrCategoryNotFound)
		w.SkipLog.LogSkip(pageURL, "page not found")
		logger.Warn("skipping removed page", "page_type", pageType)
	default:
		w.Metrics.Error(sfcrawl.ErrCategoryExtraction)
		w.SkipLog.LogSkip(pageURL, "content extraction failed: "+sfcrawl.ErrorMessage(err))
		logger.Error("extraction failed", "page_type", pageType, "err", err)
	}
}
