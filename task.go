package sfcrawl

import "context"

// CrawlTask is a single unit of crawl work. Tasks are created when a link
// is discovered, accepted at most once per normalized URL, and consumed
// exactly once by a worker.
type CrawlTask struct {
	// URL is the page to fetch.
	URL string

	// Depth is the link distance from the seed URL. Seeds are depth 0.
	Depth int

	// Product is the product this task belongs to.
	Product string

	// Referrer is the URL of the page this link was discovered on.
	// Seeds refer to themselves.
	Referrer string
}

// URLFrontier manages the per-product crawl queue with visited-set
// deduplication. Admission and visited-insertion are a single atomic
// operation: two workers discovering the same URL concurrently can never
// both enqueue it.
type URLFrontier interface {
	// Offer submits a task to the frontier. It returns false if the task
	// was rejected: URL already seen, host outside the allowed domains,
	// URL outside the product's prefixes, depth above the ceiling, or
	// frontier closed. Rejections are silent; callers never treat them
	// as errors.
	Offer(task CrawlTask) bool

	// Take blocks until a task is available or the frontier is done.
	// A frontier is done when it has been closed, or when the queue is
	// empty and no taken task is still in flight. Tasks are returned in
	// FIFO order, which preserves breadth-first traversal.
	// The bool result is false when the frontier is done.
	Take(ctx context.Context) (CrawlTask, bool)

	// TaskDone signals that a task returned by Take has been fully
	// processed, including re-offering any links it discovered.
	TaskDone()

	// Close stops admission. After Close, Offer is a no-op and Take
	// drains the remaining queue without blocking.
	Close()

	// Len returns the number of queued tasks.
	Len() int

	// Seen reports whether the normalized URL has been accepted before.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
