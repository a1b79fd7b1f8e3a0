package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPILimiter(clock *fakeClock) *APILimiter {
	l := NewAPILimiter(100, time.Minute)
	l.now = clock.Now
	return l
}

func TestAPILimiter_PermitsExactlyLimitPerWindow(t *testing.T) {
	clock := newFakeClock()
	l := newTestAPILimiter(clock)

	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}

	assert.False(t, l.Allow("1.2.3.4"), "request 101 should be rejected")
	assert.False(t, l.Allow("1.2.3.4"), "rejections must not consume quota")
}

func TestAPILimiter_WindowResets(t *testing.T) {
	clock := newFakeClock()
	l := newTestAPILimiter(clock)

	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
	require.False(t, l.Allow("1.2.3.4"))

	clock.Advance(time.Minute + time.Second)

	assert.True(t, l.Allow("1.2.3.4"), "fresh window should admit requests again")
}

func TestAPILimiter_IPsAreIndependent(t *testing.T) {
	clock := newFakeClock()
	l := newTestAPILimiter(clock)

	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}

	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestAPILimiter_ConcurrentRequestsRespectLimit(t *testing.T) {
	clock := newFakeClock()
	l := NewAPILimiter(50, time.Minute)
	l.now = clock.Now

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("1.2.3.4") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed, "exactly the limit must pass under concurrency")
}
