package crawl

import "sync"

// PageBudget enforces a per-product page ceiling. Workers acquire a slot
// before writing an artifact, so the number of written files can never
// exceed the ceiling even while fetches are in flight.
type PageBudget struct {
	mu        sync.Mutex
	remaining int
	exhausted func()
	fired     bool
}

// NewPageBudget creates a budget of n pages. The exhausted callback runs
// exactly once, when the last slot is taken or a later acquire is
// refused; the coordinator uses it to close the product's frontier.
func NewPageBudget(n int, exhausted func()) *PageBudget {
	return &PageBudget{remaining: n, exhausted: exhausted}
}

// TryAcquire claims a write slot. It returns false when the budget is
// spent; the caller drops the page without error.
func (b *PageBudget) TryAcquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remaining <= 0 {
		b.fire()
		return false
	}
	b.remaining--
	if b.remaining == 0 {
		b.fire()
	}
	return true
}

// Remaining returns the number of unclaimed slots.
func (b *PageBudget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// fire runs the exhausted callback once. Must be called with mu held.
func (b *PageBudget) fire() {
	if b.fired || b.exhausted == nil {
		return
	}
	b.fired = true
	b.exhausted()
}
