package mock

import (
	"context"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.URLFrontier = (*Frontier)(nil)

// Frontier is a mock implementation of sfcrawl.URLFrontier.
type Frontier struct {
	OfferFn    func(task sfcrawl.CrawlTask) bool
	TakeFn     func(ctx context.Context) (sfcrawl.CrawlTask, bool)
	TaskDoneFn func()
	CloseFn    func()
	LenFn      func() int
	SeenFn     func(url string) bool
}

func (f *Frontier) Offer(task sfcrawl.CrawlTask) bool {
	if f.OfferFn == nil {
		return true
	}
	return f.OfferFn(task)
}

func (f *Frontier) Take(ctx context.Context) (sfcrawl.CrawlTask, bool) {
	return f.TakeFn(ctx)
}

func (f *Frontier) TaskDone() {
	if f.TaskDoneFn != nil {
		f.TaskDoneFn()
	}
}

func (f *Frontier) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

func (f *Frontier) Len() int {
	if f.LenFn == nil {
		return 0
	}
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	if f.SeenFn == nil {
		return false
	}
	return f.SeenFn(url)
}

var _ sfcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sfcrawl.DomainLimiter.
// An unset WaitFn never throttles.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}

var _ sfcrawl.SeedDiscoverer = (*SeedDiscoverer)(nil)

// SeedDiscoverer is a mock implementation of sfcrawl.SeedDiscoverer.
// An unset DiscoverSeedsFn finds nothing.
type SeedDiscoverer struct {
	DiscoverSeedsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (d *SeedDiscoverer) DiscoverSeeds(ctx context.Context, baseURL string) ([]string, error) {
	if d.DiscoverSeedsFn == nil {
		return []string{}, nil
	}
	return d.DiscoverSeedsFn(ctx, baseURL)
}
