package crawl_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jkoenig72/sfcrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestPageBudget_Acquire(t *testing.T) {
	t.Parallel()

	b := crawl.NewPageBudget(2, nil)

	assert.True(t, b.TryAcquire())
	assert.True(t, b.TryAcquire())
	assert.False(t, b.TryAcquire())
	assert.Equal(t, 0, b.Remaining())
}

func TestPageBudget_ExhaustedFiresOnce(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	b := crawl.NewPageBudget(1, func() { fired.Add(1) })

	assert.True(t, b.TryAcquire(), "last slot is still granted")
	assert.Equal(t, int32(1), fired.Load(), "callback fires when the last slot is taken")

	assert.False(t, b.TryAcquire())
	assert.False(t, b.TryAcquire())
	assert.Equal(t, int32(1), fired.Load())
}

func TestPageBudget_ConcurrentAcquireNeverOverruns(t *testing.T) {
	t.Parallel()

	const budget = 5
	b := crawl.NewPageBudget(budget, nil)

	var wg sync.WaitGroup
	var granted atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.TryAcquire() {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(budget), granted.Load())
}
