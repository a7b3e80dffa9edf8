package crawl

import (
	"context"
	"sync"

	"github.com/jkoenig72/sfcrawl"
	"github.com/jkoenig72/sfcrawl/bloom"
)

// Frontier sizing for the Bloom prefilter.
const (
	frontierExpectedURLs      = 100000
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ sfcrawl.URLFrontier = (*Frontier)(nil)

// Frontier is a per-product blocking FIFO frontier with atomic
// visited-set admission. FIFO discipline preserves breadth-first order:
// all depth-N tasks a page produces are queued before any of their
// depth-N+1 descendants.
//
// Deduplication uses a Bloom filter as a fast prefilter backed by an
// exact visited map. The map is authoritative, so a Bloom false positive
// can never drop a page and no URL is ever fetched twice.
//
// Frontier is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu   sync.Mutex
	cond *sync.Cond

	product  string
	scope    *sfcrawl.Scope
	maxDepth int
	metrics  *sfcrawl.Metrics

	prefilter *bloom.Filter
	visited   map[string]struct{}
	queue     []sfcrawl.CrawlTask
	inflight  int
	closed    bool
}

// NewFrontier creates a Frontier for one product. Links deeper than
// maxDepth are silently dropped and counted in metrics.
func NewFrontier(product string, scope *sfcrawl.Scope, maxDepth int, metrics *sfcrawl.Metrics) *Frontier {
	f := &Frontier{
		product:   product,
		scope:     scope,
		maxDepth:  maxDepth,
		metrics:   metrics,
		prefilter: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		visited:   make(map[string]struct{}),
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Offer submits a task. Admission and visited-insertion happen under one
// lock so concurrent workers discovering the same URL can never both
// enqueue it.
func (f *Frontier) Offer(task sfcrawl.CrawlTask) bool {
	normalized, err := NormalizeURL(task.URL)
	if err != nil {
		return false
	}

	// Depth ceiling: dropped links are a metric, never an error.
	if task.Depth > f.maxDepth {
		if f.metrics != nil {
			f.metrics.SkippedDepth()
		}
		return false
	}

	// Seeds are operator-chosen and bypass the product prefix check,
	// but never the allowed-domain list.
	if task.Depth == 0 {
		if !f.scope.AllowsDomain(normalized) {
			if f.metrics != nil {
				f.metrics.SkippedFilter()
			}
			return false
		}
	} else if !f.scope.Allows(f.product, normalized) {
		if f.metrics != nil {
			f.metrics.SkippedFilter()
		}
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false
	}

	// Bloom negative means definitely new; positives are confirmed
	// against the exact map.
	if f.prefilter.Test(normalized) {
		if _, ok := f.visited[normalized]; ok {
			if f.metrics != nil {
				f.metrics.SkippedDuplicate()
			}
			return false
		}
	}

	f.prefilter.Add(normalized)
	f.visited[normalized] = struct{}{}

	task.URL = normalized
	task.Product = f.product
	f.queue = append(f.queue, task)
	f.cond.Signal()
	return true
}

// Take blocks until a task is available or the frontier is done. After
// Close it drains the remaining queue without blocking. The caller must
// call TaskDone once the returned task is fully processed.
func (f *Frontier) Take(ctx context.Context) (sfcrawl.CrawlTask, bool) {
	// Wake waiters when the context is canceled.
	stop := context.AfterFunc(ctx, func() {
		f.cond.Broadcast()
	})
	defer stop()

	f.mu.Lock()
	defer f.mu.Unlock()

	for {
		if ctx.Err() != nil {
			return sfcrawl.CrawlTask{}, false
		}
		if len(f.queue) > 0 {
			task := f.queue[0]
			f.queue = f.queue[1:]
			f.inflight++
			return task, true
		}
		if f.closed || f.inflight == 0 {
			return sfcrawl.CrawlTask{}, false
		}
		f.cond.Wait()
	}
}

// TaskDone marks a taken task as fully processed. When the last in-flight
// task finishes on an empty queue, blocked Take calls return.
func (f *Frontier) TaskDone() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inflight--
	if f.inflight == 0 && len(f.queue) == 0 {
		f.cond.Broadcast()
	}
}

// Close stops admission. Called by the coordinator when the product's
// page ceiling is reached; in-flight work drains cooperatively.
func (f *Frontier) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.cond.Broadcast()
}

// Len returns the number of queued tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the normalized URL has been accepted before.
func (f *Frontier) Seen(rawURL string) bool {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.visited[normalized]
	return ok
}
