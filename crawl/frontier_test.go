package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jkoenig72/sfcrawl"
	"github.com/jkoenig72/sfcrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope() *sfcrawl.Scope {
	return &sfcrawl.Scope{
		AllowedDomains: []string{"help.example.com"},
	}
}

func TestFrontier_OfferAndTake_FIFO(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))

	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/b", Depth: 1}))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/c", Depth: 1}))

	ctx := context.Background()
	for _, want := range []string{"https://help.example.com/a", "https://help.example.com/b", "https://help.example.com/c"} {
		task, ok := f.Take(ctx)
		require.True(t, ok)
		assert.Equal(t, want, task.URL)
		f.TaskDone()
	}
}

func TestFrontier_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	metrics := sfcrawl.NewMetrics("Sales_Cloud")
	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, metrics)

	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))
	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 1}))
	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a#frag", Depth: 1}),
		"URLs differing only by fragment are duplicates")

	assert.True(t, f.Seen("https://help.example.com/a"))
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, metrics.Snapshot().SkippedDuplicate)
}

func TestFrontier_NoDuplicateUnderConcurrentDiscovery(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))

	const workers = 32
	var wg sync.WaitGroup
	accepted := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted <- f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/shared", Depth: 1})
		}()
	}
	wg.Wait()
	close(accepted)

	var wins int
	for ok := range accepted {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent Offer of the same URL may win")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_DepthCeiling(t *testing.T) {
	t.Parallel()

	metrics := sfcrawl.NewMetrics("Sales_Cloud")
	f := crawl.NewFrontier("Sales_Cloud", testScope(), 2, metrics)

	assert.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 2}))
	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/b", Depth: 3}))

	snap := metrics.Snapshot()
	assert.Equal(t, 1, snap.SkippedDepth)
	assert.True(t, snap.HitDepthCeiling)
	assert.False(t, f.Seen("https://help.example.com/b"), "dropped links are not marked seen")
}

func TestFrontier_DomainRestriction(t *testing.T) {
	t.Parallel()

	metrics := sfcrawl.NewMetrics("Sales_Cloud")
	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, metrics)

	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://other.example.org/x", Depth: 1}))
	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://other.example.org/x", Depth: 0}),
		"seeds must still be on an allowed domain")
	assert.Equal(t, 2, metrics.Snapshot().SkippedFilter)
}

func TestFrontier_ProductPrefixes(t *testing.T) {
	t.Parallel()

	scope := &sfcrawl.Scope{
		AllowedDomains: []string{"help.example.com"},
		ProductPrefixes: map[string][]string{
			"Sales_Cloud": {"id=sales"},
		},
	}
	f := crawl.NewFrontier("Sales_Cloud", scope, 5, sfcrawl.NewMetrics("Sales_Cloud"))

	assert.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/s/articleView?id=sales.intro", Depth: 1}))
	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/s/articleView?id=service.intro", Depth: 1}))
	assert.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/landing", Depth: 0}),
		"seeds bypass the prefix check")
}

func TestFrontier_CloseStopsAdmissionAndDrains(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/b", Depth: 0}))

	f.Close()

	assert.False(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/c", Depth: 0}))

	ctx := context.Background()
	task, ok := f.Take(ctx)
	require.True(t, ok, "queued tasks drain after close")
	assert.Equal(t, "https://help.example.com/a", task.URL)
	f.TaskDone()

	_, ok = f.Take(ctx)
	require.True(t, ok)
	f.TaskDone()

	_, ok = f.Take(ctx)
	assert.False(t, ok, "drained and closed frontier signals completion")
}

func TestFrontier_TakeBlocksWhileTasksInFlight(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))

	ctx := context.Background()
	_, ok := f.Take(ctx)
	require.True(t, ok)

	// A second taker must wait: the in-flight task may discover links.
	got := make(chan bool, 1)
	go func() {
		_, ok := f.Take(ctx)
		got <- ok
	}()

	select {
	case <-got:
		t.Fatal("Take returned while a task was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	// First task discovers a link, then finishes.
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/b", Depth: 1}))
	f.TaskDone()

	select {
	case ok := <-got:
		assert.True(t, ok, "second taker receives the discovered link")
	case <-time.After(time.Second):
		t.Fatal("Take did not return after a link was offered")
	}
}

func TestFrontier_TakeReturnsWhenDrained(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))

	ctx := context.Background()
	_, ok := f.Take(ctx)
	require.True(t, ok)

	done := make(chan bool, 1)
	go func() {
		_, ok := f.Take(ctx)
		done <- ok
	}()

	f.TaskDone() // no links discovered; crawl is naturally complete

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Take did not unblock after the last in-flight task finished")
	}
}

func TestFrontier_TakeHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier("Sales_Cloud", testScope(), 5, sfcrawl.NewMetrics("Sales_Cloud"))
	require.True(t, f.Offer(sfcrawl.CrawlTask{URL: "https://help.example.com/a", Depth: 0}))

	ctx, cancel := context.WithCancel(context.Background())
	_, ok := f.Take(ctx)
	require.True(t, ok)

	done := make(chan bool, 1)
	go func() {
		_, ok := f.Take(ctx)
		done <- ok
	}()

	cancel()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Take did not unblock on context cancellation")
	}
}
