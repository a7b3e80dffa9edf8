package sfcrawl

import (
	"sync"
	"time"
)

// Error categories tracked by Metrics.
const (
	ErrCategoryTransient  = "transient"  // timeouts, connection resets
	ErrCategoryNotFound   = "not_found"  // 404-equivalent pages
	ErrCategoryExtraction = "extraction" // fallback also yielded no content
	ErrCategoryDriver     = "driver"     // browser session failures
	ErrCategoryWrite      = "write"      // file system failures
)

// Metrics holds per-product crawl counters. Workers mutate it under an
// internal lock; the coordinator reads a Snapshot once at pool-join time.
type Metrics struct {
	mu sync.Mutex

	product         string
	started         time.Time
	pagesFetched    int
	pagesWritten    int
	linksFound      int
	skippedDepth    int
	skippedFilter   int
	skippedDup      int
	lowConfidence   int
	errors          map[string]int
	maxDepthReached int
	hitPageCeiling  bool
	hitDepthCeiling bool
}

// NewMetrics creates Metrics for a product, stamping the start time.
func NewMetrics(product string) *Metrics {
	return &Metrics{
		product: product,
		started: time.Now(),
		errors:  make(map[string]int),
	}
}

// PageFetched records a successful fetch at the given depth.
func (m *Metrics) PageFetched(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pagesFetched++
	if depth > m.maxDepthReached {
		m.maxDepthReached = depth
	}
}

// PageWritten records a successfully written artifact.
func (m *Metrics) PageWritten() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pagesWritten++
}

// LinksFound adds to the discovered-link counter.
func (m *Metrics) LinksFound(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.linksFound += n
}

// SkippedDepth records a link dropped for exceeding the depth ceiling.
func (m *Metrics) SkippedDepth() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skippedDepth++
	m.hitDepthCeiling = true
}

// SkippedFilter records a link rejected by domain or prefix scope.
func (m *Metrics) SkippedFilter() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skippedFilter++
}

// SkippedDuplicate records a link rejected as already seen.
func (m *Metrics) SkippedDuplicate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skippedDup++
}

// LowConfidence records a page extracted via the soft-fallback path.
func (m *Metrics) LowConfidence() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lowConfidence++
}

// Error increments the counter for an error category.
func (m *Metrics) Error(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[category]++
}

// PageCeilingHit marks that the per-product page ceiling was reached.
func (m *Metrics) PageCeilingHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hitPageCeiling = true
}

// Written returns the current number of written artifacts.
func (m *Metrics) Written() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pagesWritten
}

// MetricsSnapshot is an immutable copy of Metrics, taken at pool join.
type MetricsSnapshot struct {
	Product          string
	Elapsed          time.Duration
	PagesFetched     int
	PagesWritten     int
	LinksFound       int
	SkippedDepth     int
	SkippedFilter    int
	SkippedDuplicate int
	LowConfidence    int
	Errors           map[string]int
	MaxDepthReached  int
	HitPageCeiling   bool
	HitDepthCeiling  bool
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make(map[string]int, len(m.errors))
	for k, v := range m.errors {
		errs[k] = v
	}

	return MetricsSnapshot{
		Product:          m.product,
		Elapsed:          time.Since(m.started),
		PagesFetched:     m.pagesFetched,
		PagesWritten:     m.pagesWritten,
		LinksFound:       m.linksFound,
		SkippedDepth:     m.skippedDepth,
		SkippedFilter:    m.skippedFilter,
		SkippedDuplicate: m.skippedDup,
		LowConfidence:    m.lowConfidence,
		Errors:           errs,
		MaxDepthReached:  m.maxDepthReached,
		HitPageCeiling:   m.hitPageCeiling,
		HitDepthCeiling:  m.hitDepthCeiling,
	}
}

// SummaryWriter persists the consolidated end-of-run summary.
type SummaryWriter interface {
	WriteSummary(runID string, snapshots []MetricsSnapshot) error
}

// TotalErrors returns the sum of all error counters.
func (s MetricsSnapshot) TotalErrors() int {
	var n int
	for _, v := range s.Errors {
		n += v
	}
	return n
}
